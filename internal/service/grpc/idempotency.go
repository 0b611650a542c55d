package grpcsvc

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"

	"github.com/vladislavdragonenkov/restock/internal/domain"
)

const (
	idempotencyKeyHeader  = "idempotency-key"
	defaultIdempotencyTTL = 24 * time.Hour
)

type idempotencyErrorPayload struct {
	Code    int32  `json:"code"`
	Message string `json:"message"`
	Reason  string `json:"reason,omitempty"`
}

// withIdempotency выполняет handler не более одного раза на ключ из метаданных.
// Без ключа или без репозитория запрос обрабатывается как обычно.
func withIdempotency[Resp any, PResp interface {
	*Resp
	proto.Message
}](
	ctx context.Context,
	s *OrderService,
	method string,
	req proto.Message,
	handler func(context.Context) (PResp, error),
) (PResp, error) {
	if s.idemRepo == nil {
		return handler(ctx)
	}
	idemKey, ok := readIdempotencyKey(ctx)
	if !ok {
		return handler(ctx)
	}

	reqHash, err := buildIdempotencyRequestHash(method, req)
	if err != nil {
		s.logger.WithError(err).WithField("method", method).Warn("failed to build idempotency request hash")
		return nil, status.Error(codes.Internal, "failed to initialize idempotency request")
	}

	record, err := s.idemRepo.CreateProcessing(ctx, idemKey, reqHash, time.Now().UTC().Add(s.idemTTL))
	if err != nil {
		return replayIdempotency[Resp, PResp](s, err, record)
	}

	resp, runErr := handler(ctx)
	if runErr != nil {
		s.cacheIdempotencyFailure(ctx, idemKey, runErr)
		return nil, runErr
	}

	if cacheErr := s.cacheIdempotencySuccess(ctx, idemKey, resp); cacheErr != nil {
		s.logger.WithError(cacheErr).WithField("idempotency_key", idemKey).Warn("failed to store idempotent success response")
	}
	return resp, nil
}

func replayIdempotency[Resp any, PResp interface {
	*Resp
	proto.Message
}](s *OrderService, createErr error, record domain.IdempotencyRecord) (PResp, error) {
	switch {
	case errors.Is(createErr, domain.ErrIdempotencyHashMismatch):
		return nil, statusWithReason(codes.AlreadyExists,
			"idempotency key is already used with different request payload", domain.KindConflict, nil)
	case errors.Is(createErr, domain.ErrIdempotencyKeyAlreadyExists):
		switch record.Status {
		case domain.IdempotencyStatusDone:
			if len(record.ResponseBody) == 0 {
				return nil, status.Error(codes.Internal, "idempotency cache is empty")
			}
			resp := PResp(new(Resp))
			if err := protojson.Unmarshal(record.ResponseBody, resp); err != nil {
				s.logger.WithError(err).WithField("idempotency_key", record.Key).Warn("failed to decode cached idempotency response")
				return nil, status.Error(codes.Internal, "failed to decode cached idempotency response")
			}
			return resp, nil
		case domain.IdempotencyStatusProcessing:
			return nil, status.Error(codes.Aborted, "request with the same idempotency key is already processing")
		case domain.IdempotencyStatusFailed:
			return nil, decodeIdempotencyFailure(record)
		default:
			return nil, status.Error(codes.Internal, "unknown idempotency record status")
		}
	default:
		s.logger.WithError(createErr).Warn("failed to create idempotency record")
		return nil, status.Error(codes.Internal, "failed to initialize idempotency request")
	}
}

func (s *OrderService) cacheIdempotencySuccess(ctx context.Context, key string, resp proto.Message) error {
	data, err := protojson.Marshal(resp)
	if err != nil {
		return err
	}
	return s.idemRepo.MarkDone(ctx, key, data, int(codes.OK))
}

func (s *OrderService) cacheIdempotencyFailure(ctx context.Context, key string, runErr error) {
	st := status.Convert(runErr)
	code := st.Code()
	if code == codes.OK {
		code = codes.Internal
	}

	payload, err := json.Marshal(idempotencyErrorPayload{
		Code:    int32(code), //nolint:gosec // codes.Code is a bounded enum value.
		Message: st.Message(),
		Reason:  string(reasonOf(st)),
	})
	if err != nil {
		s.logger.WithError(err).WithField("idempotency_key", key).Warn("failed to encode idempotency failure payload")
		payload = nil
	}

	if err := s.idemRepo.MarkFailed(ctx, key, payload, int(code)); err != nil {
		s.logger.WithError(err).WithField("idempotency_key", key).Warn("failed to store idempotency failure response")
	}
}

func decodeIdempotencyFailure(record domain.IdempotencyRecord) error {
	const fallback = "previous request with the same idempotency key failed"

	if len(record.ResponseBody) > 0 {
		var payload idempotencyErrorPayload
		if err := json.Unmarshal(record.ResponseBody, &payload); err == nil {
			if code, ok := grpcCode(int64(payload.Code)); ok && code != codes.OK {
				if payload.Message == "" {
					payload.Message = fallback
				}
				if payload.Reason != "" {
					return statusWithReason(code, payload.Message, domain.ErrorKind(payload.Reason), nil)
				}
				return status.Error(code, payload.Message)
			}
		}
	}

	if code, ok := grpcCode(int64(record.ResponseCode)); ok && code != codes.OK {
		return status.Error(code, fallback)
	}
	return status.Error(codes.Internal, fallback)
}

func grpcCode(value int64) (codes.Code, bool) {
	if value < int64(codes.OK) || value > int64(codes.Unauthenticated) {
		return codes.Internal, false
	}
	return codes.Code(uint32(value)), true
}

func readIdempotencyKey(ctx context.Context) (string, bool) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", false
	}
	for _, value := range md.Get(idempotencyKeyHeader) {
		if key := strings.TrimSpace(value); key != "" {
			return key, true
		}
	}
	return "", false
}

// buildIdempotencyRequestHash хеширует метод и детерминированное protobuf-представление запроса.
func buildIdempotencyRequestHash(method string, req proto.Message) (string, error) {
	if req == nil {
		return "", fmt.Errorf("request is nil")
	}

	data, err := proto.MarshalOptions{Deterministic: true}.Marshal(req)
	if err != nil {
		return "", err
	}

	payload := make([]byte, 0, len(method)+1+len(data))
	payload = append(payload, method...)
	payload = append(payload, ':')
	payload = append(payload, data...)
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:]), nil
}
