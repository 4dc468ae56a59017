package service

import "go.opentelemetry.io/otel"

var tracer = otel.Tracer("github.com/rocketscienceinc/tictactoe-solo/internal/service")
