// Package engine exposes maze generation and route search to presentation code.
// An Engine holds only its dimensions, its gateway list and its random source;
// every result flows back through return values.
package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/go-logr/logr"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/mazeroute/internal/maze"
	"github.com/samdwyer/mazeroute/internal/telemetry"
)

// Engine generates mazes of a fixed size.
type Engine struct {
	id       uuid.UUID
	width    int
	height   int
	gateways []maze.Point
	rng      maze.Source
	logger   logr.Logger
	tracer   trace.Tracer
}

// Option configures an Engine.
type Option func(*Engine)

// WithSource sets the random source used for generation.
func WithSource(src maze.Source) Option {
	return func(e *Engine) {
		e.rng = src
	}
}

// WithSeed seeds a fresh math/rand source. A seed of 0 uses the clock.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.rng = maze.NewSource(seed)
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger logr.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithTracer sets the tracer. The default uses the global provider.
func WithTracer(tracer trace.Tracer) Option {
	return func(e *Engine) {
		e.tracer = tracer
	}
}

// Configure creates an engine for width x height mazes.
func Configure(width, height int, opts ...Option) (*Engine, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("configure: %w: %dx%d", maze.ErrConfiguration, width, height)
	}

	e := &Engine{
		id:     uuid.New(),
		width:  width,
		height: height,
		logger: logr.Discard(),
		tracer: telemetry.Tracer("engine"),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = maze.NewSource(0)
	}
	e.logger = e.logger.WithValues("engine", e.id.String())

	return e, nil
}

// ID returns the engine's identifier.
func (e *Engine) ID() uuid.UUID { return e.id }

// Width returns the maze width in cells.
func (e *Engine) Width() int { return e.width }

// Height returns the maze height in cells.
func (e *Engine) Height() int { return e.height }

// Gateways returns a copy of the registered gateways in registration order.
func (e *Engine) Gateways() []maze.Point {
	out := make([]maze.Point, len(e.gateways))
	copy(out, e.gateways)
	return out
}

// RegisterGateway queues a boundary opening at cell (x, y).
// Placement is checked when cells are generated.
func (e *Engine) RegisterGateway(x, y int) {
	e.gateways = append(e.gateways, maze.Point{X: x, Y: y})
}

// ResetGateways clears every registered gateway.
func (e *Engine) ResetGateways() {
	e.gateways = nil
}

// GenerateCells carves a new maze and opens the registered gateways.
func (e *Engine) GenerateCells(ctx context.Context) (*maze.Grid, error) {
	_, span := e.tracer.Start(ctx, "maze.generate_cells",
		trace.WithAttributes(e.attributes()...))
	defer span.End()

	startTime := time.Now()

	grid, err := maze.Generate(e.width, e.height, e.rng)
	if err != nil {
		return nil, e.fail(span, err, "maze generation failed")
	}

	if err := maze.ApplyGateways(grid, e.gateways); err != nil {
		return nil, e.fail(span, err, "gateway injection failed")
	}

	elapsed := time.Since(startTime)
	span.SetAttributes(
		attribute.Int("maze.passages", grid.OpenPassages()),
		attribute.Int64("maze.generation_us", elapsed.Microseconds()),
	)
	e.logger.V(1).Info("generated cells",
		"width", e.width, "height", e.height,
		"gateways", len(e.gateways), "elapsed", elapsed)

	return grid, nil
}

// GenerateTiles is GenerateCells followed by tile expansion.
func (e *Engine) GenerateTiles(ctx context.Context) (*maze.Tiles, error) {
	ctx, span := e.tracer.Start(ctx, "maze.generate_tiles",
		trace.WithAttributes(e.attributes()...))
	defer span.End()

	grid, err := e.GenerateCells(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	tiles := maze.ToTiles(grid)
	span.SetAttributes(
		attribute.Int("tiles.width", tiles.Width),
		attribute.Int("tiles.height", tiles.Height),
	)
	return tiles, nil
}

// FindRoute returns the tile route between two cells of tiles.
func (e *Engine) FindRoute(ctx context.Context, tiles *maze.Tiles, startX, startY, endX, endY int) (maze.Route, error) {
	_, span := e.tracer.Start(ctx, "maze.find_route",
		trace.WithAttributes(
			attribute.String("engine.id", e.id.String()),
			attribute.Int("route.start_x", startX),
			attribute.Int("route.start_y", startY),
			attribute.Int("route.end_x", endX),
			attribute.Int("route.end_y", endY),
		))
	defer span.End()

	route, err := maze.FindRoute(tiles, startX, startY, endX, endY)
	if err != nil {
		return nil, e.fail(span, err, "route search failed",
			"start", maze.Point{X: startX, Y: startY},
			"end", maze.Point{X: endX, Y: endY})
	}

	span.SetAttributes(attribute.Int("route.length", route.Len()))
	e.logger.V(1).Info("found route", "length", route.Len())

	return route, nil
}

func (e *Engine) attributes() []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("engine.id", e.id.String()),
		attribute.Int("maze.width", e.width),
		attribute.Int("maze.height", e.height),
		attribute.Int("maze.gateways", len(e.gateways)),
	}
}

// fail records err on the span and the log and hands it back.
func (e *Engine) fail(span trace.Span, err error, msg string, kv ...any) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	e.logger.Error(err, msg, kv...)
	return err
}
