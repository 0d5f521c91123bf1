package extract

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"omd-facade/internal/domain"
)

// CreateService registers a database service upstream and returns a
// human-readable outcome message. Creation is idempotent: an existing
// service (found by probe or reported via 409) is not an error.
func (s *Service) CreateService(ctx context.Context, req domain.CreateServiceRequest) (string, error) {
	s.logger.Info("service creation requested", "name", req.Name, "service_type", req.ServiceType)

	if !domain.IsValidServiceType(req.ServiceType) {
		s.logger.Warn("invalid service type", "service_type", req.ServiceType)
		return "", domain.ErrValidation("invalid serviceType, must be one of: %s",
			strings.Join(domain.ValidServiceTypes, ", "))
	}

	// Probe for an existing service. Any failure here means absent.
	if existing, err := s.client.GetServiceByName(ctx, req.Name, "", ""); err == nil {
		id, _ := existing["id"].(string)
		s.logger.Warn("service already exists", "name", req.Name, "id", id)
		return fmt.Sprintf("database service %q already exists with ID: %s", req.Name, id), nil
	}

	created, err := s.client.CreateDatabaseService(ctx, buildServiceRequest(req))
	if err != nil {
		var ue *domain.UpstreamError
		if errors.As(err, &ue) && ue.StatusCode == http.StatusConflict {
			return fmt.Sprintf("database service %q already exists", req.Name), nil
		}
		s.logger.Error("service creation failed", "name", req.Name, "error", err)
		return "", err
	}

	name, _ := created["name"].(string)
	id, _ := created["id"].(string)
	s.logger.Info("service created", "name", name, "id", id)
	return fmt.Sprintf("database service %q created successfully with ID: %s", name, id), nil
}

// buildServiceRequest shapes the inbound payload into the upstream creation
// body: the connection config is nested, tags become tagFQN labels, and
// owners become entity references.
func buildServiceRequest(req domain.CreateServiceRequest) map[string]any {
	body := map[string]any{
		"name":        req.Name,
		"serviceType": req.ServiceType,
		"connection": map[string]any{
			"config": req.Connection,
		},
	}
	if req.Description != "" {
		body["description"] = req.Description
	}
	if req.DisplayName != "" {
		body["displayName"] = req.DisplayName
	}
	if len(req.Tags) > 0 {
		tags := make([]map[string]any, 0, len(req.Tags))
		for _, t := range req.Tags {
			tags = append(tags, map[string]any{"tagFQN": t})
		}
		body["tags"] = tags
	}
	if len(req.Owners) > 0 {
		owners := make([]map[string]any, 0, len(req.Owners))
		for _, o := range req.Owners {
			owners = append(owners, map[string]any{"name": o.Name, "type": o.Type})
		}
		body["owners"] = owners
	}
	return body
}
