package extract

import (
	"context"
	"errors"

	"omd-facade/internal/domain"
)

// Health probes the upstream version endpoint. It never returns an error:
// connectivity failures are reported inside the status document.
func (s *Service) Health(ctx context.Context) domain.HealthStatus {
	info, err := s.client.SystemVersion(ctx)
	if err == nil {
		version, _ := info["version"].(string)
		if version == "" {
			version = "unknown"
		}
		return domain.HealthStatus{
			OpenMetadataHealthy: true,
			APILoaded:           true,
			ServerInfo: map[string]any{
				"version":         version,
				"connection_type": "Direct API",
				"server_data":     info,
			},
			Message: "OpenMetadata API connection successful",
		}
	}

	s.logger.Error("health check failed", "error", err)

	var ue *domain.UpstreamError
	if errors.As(err, &ue) && ue.StatusCode != 0 {
		return domain.HealthStatus{
			OpenMetadataHealthy: false,
			APILoaded:           true,
			ServerInfo: map[string]any{
				"version":         "unknown",
				"connection_type": "Direct API",
				"status_code":     ue.StatusCode,
				"response_text":   ue.Message,
			},
			Message: "OpenMetadata connection failed",
		}
	}

	return domain.HealthStatus{
		OpenMetadataHealthy: false,
		APILoaded:           true,
		Error:               err.Error(),
		Message:             "OpenMetadata API connection failed",
		Troubleshooting: map[string]string{
			"check_server": "Ensure OpenMetadata server is running",
			"check_url":    "Verify OPENMETADATA_URL environment variable",
			"check_token":  "Verify OPENMETADATA_ACCESS_TOKEN is valid",
		},
	}
}
