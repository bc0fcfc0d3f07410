package analytics

import (
	"github.com/argos/backend/internal/domain/analytics"
)

// SectionResponse describes one report section
type SectionResponse struct {
	ID          analytics.SectionID `json:"id"`
	Title       string              `json:"title"`
	Icon        string              `json:"icon"`
	Description string              `json:"description"`
}

// SectionDataResponse is a section together with its rows
type SectionDataResponse struct {
	SectionResponse
	Rows any `json:"rows"`
}

// Service serves the static business dataset section by section
type Service struct {
	dataset analytics.Source
}

// NewService creates a new analytics Service
func NewService(dataset analytics.Source) *Service {
	return &Service{dataset: dataset}
}

// ListSections returns every report section in display order
func (s *Service) ListSections() []SectionResponse {
	sections := make([]SectionResponse, len(analytics.Sections))
	for i, sec := range analytics.Sections {
		sections[i] = toSectionResponse(sec)
	}
	return sections
}

// GetSection returns the rows of one section, or analytics.ErrUnknownSection
func (s *Service) GetSection(id string) (*SectionDataResponse, error) {
	section, err := analytics.LookupSection(analytics.SectionID(id))
	if err != nil {
		return nil, err
	}
	rows, err := s.dataset.Dataset().Records(section.ID)
	if err != nil {
		return nil, err
	}
	return &SectionDataResponse{
		SectionResponse: toSectionResponse(section),
		Rows:            rows,
	}, nil
}

func toSectionResponse(s analytics.Section) SectionResponse {
	return SectionResponse{
		ID:          s.ID,
		Title:       s.Label,
		Icon:        s.Icon,
		Description: s.Description,
	}
}
