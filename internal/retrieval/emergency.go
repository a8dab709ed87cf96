package retrieval

import (
	"context"

	"trini/internal/candidate"
	"trini/internal/filters"
	"trini/internal/recommendation"
)

// TierEmergency names the last-resort tier.
const TierEmergency = "emergency"

// EmergencyTier always yields the single service-unavailable placeholder.
type EmergencyTier struct{}

func (EmergencyTier) Name() string { return TierEmergency }

func (EmergencyTier) MinResults() int { return 1 }

func (EmergencyTier) Fetch(context.Context, filters.ExtractedFilters, int) ([]recommendation.MovieRecommendation, error) {
	return []recommendation.MovieRecommendation{Emergency()}, nil
}

// Emergency returns the placeholder recommendation. It is the only
// recommendation scored exactly 0.
func Emergency() recommendation.MovieRecommendation {
	return recommendation.MovieRecommendation{
		Movie: candidate.Movie{
			ID:          "emergency-1",
			Title:       "Servicio Temporalmente No Disponible",
			Overview:    "Lo sentimos, el servicio de recomendaciones no está disponible en este momento. Por favor, inténtalo de nuevo más tarde.",
			PosterURL:   candidate.PlaceholderPoster,
			ReleaseDate: "2024-01-01",
			SourceID:    "emergency-1",
		},
		RelevanceScore: 0,
		Reasoning:      "El servicio de películas está temporalmente no disponible. Nuestro equipo está trabajando para restaurar el servicio lo antes posible.",
		Source:         recommendation.SourceEmergency,
	}
}
