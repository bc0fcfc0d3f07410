// Package models holds the GORM rows behind each repository. Domain types never
// carry gorm tags; every model maps with ToDomain and FromDomain.
//
// Every business table embeds OwnedAggregateModel, so rows carry user_id and a
// version column next to the usual timestamps.
package models
