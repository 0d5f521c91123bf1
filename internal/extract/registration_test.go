package extract_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"omd-facade/internal/domain"
	"omd-facade/internal/extract"
	"omd-facade/internal/testutil"
)

func TestCreateService(t *testing.T) {
	validReq := domain.CreateServiceRequest{
		Name:        "mysql_prod",
		ServiceType: "MySQL",
		Connection:  map[string]any{"hostPort": "db:3306"},
	}

	t.Run("creates_when_absent", func(t *testing.T) {
		var gotBody map[string]any
		mock := &testutil.MockCatalogClient{
			GetServiceByNameFn: func(ctx context.Context, name, include, fields string) (map[string]any, error) {
				return nil, domain.ErrUpstream(404, "not found")
			},
			CreateDatabaseServiceFn: func(ctx context.Context, req map[string]any) (map[string]any, error) {
				gotBody = req
				return map[string]any{"id": "new-id", "name": "mysql_prod"}, nil
			},
		}
		svc := extract.NewService(mock, discardLogger())

		msg, err := svc.CreateService(context.Background(), validReq)
		require.NoError(t, err)
		assert.Contains(t, msg, "created successfully")
		assert.Contains(t, msg, "new-id")

		conn, ok := gotBody["connection"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, validReq.Connection, conn["config"])
	})

	t.Run("invalid_service_type_rejected_before_upstream", func(t *testing.T) {
		mock := &testutil.MockCatalogClient{}
		svc := extract.NewService(mock, discardLogger())

		_, err := svc.CreateService(context.Background(), domain.CreateServiceRequest{
			Name:        "x",
			ServiceType: "SQLite",
		})

		var ve *domain.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Contains(t, ve.Message, "MySQL")
		assert.Empty(t, mock.Calls)
	})

	t.Run("existing_service_short_circuits", func(t *testing.T) {
		mock := &testutil.MockCatalogClient{
			GetServiceByNameFn: func(ctx context.Context, name, include, fields string) (map[string]any, error) {
				return map[string]any{"id": "old-id", "name": name}, nil
			},
		}
		svc := extract.NewService(mock, discardLogger())

		msg, err := svc.CreateService(context.Background(), validReq)
		require.NoError(t, err)
		assert.Contains(t, msg, "already exists")
		assert.Contains(t, msg, "old-id")
		for _, call := range mock.Calls {
			assert.NotContains(t, call, "CreateDatabaseService")
		}
	})

	t.Run("conflict_on_create_is_not_an_error", func(t *testing.T) {
		mock := &testutil.MockCatalogClient{
			GetServiceByNameFn: func(ctx context.Context, name, include, fields string) (map[string]any, error) {
				return nil, domain.ErrUpstream(404, "not found")
			},
			CreateDatabaseServiceFn: func(ctx context.Context, req map[string]any) (map[string]any, error) {
				return nil, domain.ErrUpstream(409, "duplicate")
			},
		}
		svc := extract.NewService(mock, discardLogger())

		msg, err := svc.CreateService(context.Background(), validReq)
		require.NoError(t, err)
		assert.Contains(t, msg, "already exists")
	})

	t.Run("other_create_failures_propagate", func(t *testing.T) {
		mock := &testutil.MockCatalogClient{
			GetServiceByNameFn: func(ctx context.Context, name, include, fields string) (map[string]any, error) {
				return nil, domain.ErrUpstream(0, "connection refused")
			},
			CreateDatabaseServiceFn: func(ctx context.Context, req map[string]any) (map[string]any, error) {
				return nil, domain.ErrUpstream(500, "server error")
			},
		}
		svc := extract.NewService(mock, discardLogger())

		_, err := svc.CreateService(context.Background(), validReq)
		var ue *domain.UpstreamError
		require.ErrorAs(t, err, &ue)
		assert.Equal(t, 500, ue.StatusCode)
	})

	t.Run("tags_and_owners_shaped_for_upstream", func(t *testing.T) {
		var gotBody map[string]any
		mock := &testutil.MockCatalogClient{
			GetServiceByNameFn: func(ctx context.Context, name, include, fields string) (map[string]any, error) {
				return nil, domain.ErrUpstream(404, "not found")
			},
			CreateDatabaseServiceFn: func(ctx context.Context, req map[string]any) (map[string]any, error) {
				gotBody = req
				return map[string]any{"id": "id", "name": "svc"}, nil
			},
		}
		svc := extract.NewService(mock, discardLogger())

		req := validReq
		req.Tags = []string{"Tier.Gold"}
		req.Owners = []domain.OwnerRef{{Name: "data-team", Type: "team"}}
		_, err := svc.CreateService(context.Background(), req)
		require.NoError(t, err)

		assert.Equal(t, []map[string]any{{"tagFQN": "Tier.Gold"}}, gotBody["tags"])
		assert.Equal(t, []map[string]any{{"name": "data-team", "type": "team"}}, gotBody["owners"])
	})
}
