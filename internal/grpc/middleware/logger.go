package middleware

import (
	"context"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"

	"urmonov-web/pkg/logger"
)

// UnaryLogger logs unary gRPC requests with method, IP, status and duration.
func UnaryLogger(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	logCall("gRPC request", info.FullMethod, getClientIP(ctx), start, err)
	return resp, err
}

// StreamLogger logs streaming gRPC requests (health Watch) once they end.
func StreamLogger(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
	start := time.Now()
	clientIP := getClientIP(ss.Context())

	logger.Debug("gRPC stream started",
		zap.String("method", info.FullMethod),
		zap.String("ip", clientIP),
	)

	err := handler(srv, ss)
	logCall("gRPC stream", info.FullMethod, clientIP, start, err)
	return err
}

func logCall(msg, method, clientIP string, start time.Time, err error) {
	fields := []zap.Field{
		zap.String("method", method),
		zap.String("ip", clientIP),
		zap.String("status", status.Code(err).String()),
		zap.Duration("duration", time.Since(start)),
	}
	if err != nil {
		logger.Warn(msg, append(fields, zap.Error(err))...)
		return
	}
	logger.Debug(msg, fields...)
}

// getClientIP - X-Forwarded-For / X-Real-IP metadata, keyin peer manzili
func getClientIP(ctx context.Context) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if forwarded := md.Get("x-forwarded-for"); len(forwarded) > 0 {
			return forwarded[0]
		}
		if realIP := md.Get("x-real-ip"); len(realIP) > 0 {
			return realIP[0]
		}
	}

	if p, ok := peer.FromContext(ctx); ok && p.Addr != nil {
		return p.Addr.String()
	}

	return "unknown"
}
