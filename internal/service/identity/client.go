// Package identity: адаптеры сервиса пользователей.
package identity

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/vladislavdragonenkov/restock/internal/domain"
	restockv1 "github.com/vladislavdragonenkov/restock/proto/restock/v1"
)

// Client вызывает внешний AuthService по gRPC.
type Client struct {
	api     restockv1.AuthServiceClient
	timeout time.Duration
	logger  *log.Entry
}

func NewClient(conn grpc.ClientConnInterface, timeout time.Duration, logger *log.Entry) *Client {
	if logger == nil {
		logger = log.WithField("component", "identity-client")
	}
	return &Client{api: restockv1.NewAuthServiceClient(conn), timeout: timeout, logger: logger}
}

// GetUser возвращает пользователя. NotFound и пустой ответ: ErrUserNotFound,
// прочие ошибки: *domain.UpstreamError.
func (c *Client) GetUser(ctx context.Context, userID int64) (domain.User, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	resp, err := c.api.GetUser(ctx, &restockv1.GetUserRequest{UserId: userID})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return domain.User{}, fmt.Errorf("%w: id %d", domain.ErrUserNotFound, userID)
		}
		c.logger.WithError(err).WithField("user_id", userID).Warn("identity lookup failed")
		return domain.User{}, &domain.UpstreamError{Service: "identity", Status: status.Code(err).String(), Err: err}
	}
	if resp == nil || resp.User == nil || resp.User.Id == 0 {
		return domain.User{}, fmt.Errorf("%w: id %d", domain.ErrUserNotFound, userID)
	}
	return domain.User{ID: resp.User.Id, Email: resp.User.Email, Name: resp.User.Name}, nil
}

var _ domain.IdentityService = (*Client)(nil)
