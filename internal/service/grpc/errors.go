package grpcsvc

import (
	"context"
	"errors"

	log "github.com/sirupsen/logrus"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/vladislavdragonenkov/restock/internal/domain"
	"github.com/vladislavdragonenkov/restock/internal/validation"
)

// errorDomain: поле domain в google.rpc.ErrorInfo.
const errorDomain = "restock.v1"

// errRequestRequired возвращается на пустое тело запроса.
var errRequestRequired = status.Error(codes.InvalidArgument, "request is required")

// classify определяет gRPC-код и вид ошибки.
func classify(err error) (codes.Code, domain.ErrorKind) {
	switch {
	case errors.Is(err, validation.ErrInvalidRequest):
		return codes.InvalidArgument, domain.KindInvalidInput
	case errors.Is(err, context.DeadlineExceeded):
		return codes.DeadlineExceeded, domain.KindInternal
	case errors.Is(err, context.Canceled):
		return codes.Canceled, domain.KindInternal
	}

	kind := domain.KindOf(err)
	switch kind {
	case domain.KindNotFound:
		return codes.NotFound, kind
	case domain.KindInvalidReference, domain.KindInvalidInput:
		return codes.InvalidArgument, kind
	case domain.KindConflict:
		return codes.AlreadyExists, kind
	case domain.KindUpstreamFailure:
		return codes.Unavailable, kind
	default:
		return codes.Internal, kind
	}
}

// toStatus переводит ошибку сервиса в gRPC-статус с деталью ErrorInfo.
// Текст внутренних ошибок наружу не попадает.
func toStatus(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	code, kind := classify(err)
	msg := err.Error()
	if code == codes.Internal {
		msg = "internal error"
	}
	return statusWithReason(code, msg, kind, upstreamMetadata(err))
}

func statusWithReason(code codes.Code, msg string, kind domain.ErrorKind, md map[string]string) error {
	st := status.New(code, msg)
	detailed, err := st.WithDetails(&errdetails.ErrorInfo{
		Reason:   string(kind),
		Domain:   errorDomain,
		Metadata: md,
	})
	if err != nil {
		return st.Err()
	}
	return detailed.Err()
}

func upstreamMetadata(err error) map[string]string {
	var upstream *domain.UpstreamError
	if !errors.As(err, &upstream) {
		return nil
	}
	md := map[string]string{"service": upstream.Service}
	if upstream.Status != "" {
		md["status"] = upstream.Status
	}
	return md
}

// reasonOf достаёт вид ошибки из детали ErrorInfo статуса.
func reasonOf(st *status.Status) domain.ErrorKind {
	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok {
			return domain.ErrorKind(info.GetReason())
		}
	}
	return domain.KindInternal
}

// fail логирует ошибку метода и возвращает gRPC-статус.
func (s *OrderService) fail(method string, err error) error {
	converted := toStatus(err)
	st := status.Convert(converted)
	entry := s.logger.WithError(err).WithFields(log.Fields{
		"method": method,
		"code":   st.Code().String(),
	})
	if st.Code() == codes.Internal {
		entry.Error("request failed")
	} else {
		entry.Debug("request rejected")
	}
	return converted
}
