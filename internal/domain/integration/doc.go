// Package integration describes the external systems panel: connection status,
// sync events, webhook logs, field mappings and schedules. Data comes from a
// Source implemented in the infrastructure layer.
package integration
