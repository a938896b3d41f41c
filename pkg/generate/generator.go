// Package generate runs the chunked sample-and-repair pipeline: draw a
// bounded batch from the fitted joint model, repair it until every domain
// invariant holds, assign identifiers, and append it to the sink. At most
// one batch is resident in memory at a time.
package generate

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/veldt-labs/synthgen/pkg/codec"
	"github.com/veldt-labs/synthgen/pkg/retry"
	"github.com/veldt-labs/synthgen/pkg/schema"
)

// Sink receives repaired chunks. Implementations append rows to the
// output without repeating the header.
type Sink interface {
	Append(rows [][]string) error
}

// Sampler draws batches of vectors over the modeled columns, one
// component per column in Roles.Modeled() order. model.Sampler is the
// production implementation.
type Sampler interface {
	SampleBatch(n int) [][]float64
}

// Options tune behavior beyond the core contract.
type Options struct {
	// WriteRetry enables bounded retry of failed sink writes. Nil keeps
	// the default contract: the first write error is fatal.
	WriteRetry *retry.Config
}

// column emission kinds, resolved once at construction.
const (
	kindIdentifier = iota
	kindTimeIndependent
	kindTimeResidual
	kindOtherNumeric
	kindGPA
	kindAge
	kindCategorical
	kindDerivedLabel
)

type outputColumn struct {
	name       string
	kind       int
	modeledIdx int // index into a sampled vector, -1 for derived columns
}

type categoricalColumn struct {
	name       string
	modeledIdx int
	size       int
}

// Generator owns the generation loop and its only mutable state: the
// identifier counter and the cumulative row count.
type Generator struct {
	roles   *schema.Roles
	codec   *codec.Codec
	sampler Sampler
	sink    Sink
	logger  *zap.Logger
	opts    Options

	target    int64
	chunkSize int

	// resolved column plumbing
	output       []outputColumn
	timeIdx      []int
	categoricals []categoricalColumn
	gpaIdx       int
	ageIdx       int
	sleepIdx     int
	studyIdx     int

	nextID    int64
	generated int64
}

// New wires a Generator. firstID is where synthetic identifiers start
// (max seed identifier + 1); target is the exact number of new rows to
// produce; chunkSize bounds rows per iteration. Pass nil logger to
// disable logging.
func New(roles *schema.Roles, cdc *codec.Codec, sampler Sampler, sink Sink,
	firstID, target int64, chunkSize int, logger *zap.Logger, opts Options) (*Generator, error) {
	if chunkSize <= 0 {
		return nil, fmt.Errorf("chunk size must be > 0, got %d", chunkSize)
	}
	if target < 0 {
		return nil, fmt.Errorf("target rows must be >= 0, got %d", target)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	g := &Generator{
		roles:     roles,
		codec:     cdc,
		sampler:   sampler,
		sink:      sink,
		logger:    logger.Named("generator"),
		opts:      opts,
		target:    target,
		chunkSize: chunkSize,
		gpaIdx:    -1,
		ageIdx:    -1,
		nextID:    firstID,
	}
	if err := g.resolveColumns(); err != nil {
		return nil, err
	}
	return g, nil
}

// resolveColumns turns the role sets into index plumbing: where each
// modeled column lives in a sampled vector, and how each output column
// (in seed order) is produced from a repaired row.
func (g *Generator) resolveColumns() error {
	modeledIdx := make(map[string]int)
	for i, name := range g.roles.Modeled() {
		modeledIdx[name] = i
	}

	for _, name := range g.roles.TimeIndependent {
		g.timeIdx = append(g.timeIdx, modeledIdx[name])
	}
	for _, name := range g.roles.Categorical {
		g.categoricals = append(g.categoricals, categoricalColumn{
			name:       name,
			modeledIdx: modeledIdx[name],
			size:       g.codec.Size(name),
		})
	}
	// GPA and Age repair applies only when those columns really are
	// numeric; a categorical classification wins otherwise.
	for _, name := range g.roles.OtherNumeric {
		switch name {
		case schema.ColumnGPA:
			g.gpaIdx = modeledIdx[name]
		case schema.ColumnAge:
			g.ageIdx = modeledIdx[name]
		}
	}
	var ok bool
	if g.sleepIdx, ok = modeledIdx[schema.ColumnSleepHours]; !ok {
		return fmt.Errorf("modeled columns missing %s", schema.ColumnSleepHours)
	}
	if g.studyIdx, ok = modeledIdx[schema.ColumnStudyHours]; !ok {
		return fmt.Errorf("modeled columns missing %s", schema.ColumnStudyHours)
	}

	timeIndependent := make(map[string]bool, len(g.roles.TimeIndependent))
	for _, name := range g.roles.TimeIndependent {
		timeIndependent[name] = true
	}
	categorical := make(map[string]bool, len(g.roles.Categorical))
	for _, name := range g.roles.Categorical {
		categorical[name] = true
	}

	// Output columns follow the seed's original order exactly.
	for _, name := range g.roles.Columns {
		col := outputColumn{name: name, modeledIdx: -1}
		switch {
		case name == g.roles.Identifier:
			col.kind = kindIdentifier
		case name == g.roles.TimeResidual:
			col.kind = kindTimeResidual
		case name == g.roles.DerivedLabel:
			col.kind = kindDerivedLabel
		case timeIndependent[name]:
			col.kind = kindTimeIndependent
			col.modeledIdx = modeledIdx[name]
		case categorical[name]:
			col.kind = kindCategorical
			col.modeledIdx = modeledIdx[name]
		case name == schema.ColumnGPA:
			col.kind = kindGPA
			col.modeledIdx = modeledIdx[name]
		case name == schema.ColumnAge:
			col.kind = kindAge
			col.modeledIdx = modeledIdx[name]
		default:
			idx, ok := modeledIdx[name]
			if !ok {
				return fmt.Errorf("column %s has no role and is not modeled", name)
			}
			col.kind = kindOtherNumeric
			col.modeledIdx = idx
		}
		g.output = append(g.output, col)
	}
	return nil
}

// Run generates rows until the target is met. Each iteration samples at
// most chunkSize vectors, repairs them, assigns a contiguous identifier
// run, and appends the chunk to the sink. The loop adds exactly the batch
// size per iteration and can never overshoot the target. Errors abort the
// run; whatever was appended before the failure remains valid on disk.
func (g *Generator) Run(ctx context.Context) error {
	runID := uuid.New()
	start := time.Now()
	chunk := 0

	g.logger.Info("generation started",
		zap.String("run_id", runID.String()),
		zap.Int64("target_new_rows", g.target),
		zap.Int("chunk_size", g.chunkSize),
		zap.Int64("first_id", g.nextID))

	for g.generated < g.target {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("generation cancelled: %w", err)
		}

		batchSize := g.chunkSize
		if remaining := g.target - g.generated; int64(batchSize) > remaining {
			batchSize = int(remaining)
		}

		rows := g.buildChunk(batchSize)

		if err := retry.Do(ctx, g.opts.WriteRetry, func() error {
			return g.sink.Append(rows)
		}); err != nil {
			return fmt.Errorf("write chunk %d: %w", chunk+1, err)
		}

		g.nextID += int64(batchSize)
		g.generated += int64(batchSize)
		chunk++

		elapsed := time.Since(start)
		speed := float64(g.generated) / elapsed.Seconds()
		var eta time.Duration
		if speed > 0 {
			eta = time.Duration(float64(g.target-g.generated) / speed * float64(time.Second))
		}
		g.logger.Info("chunk written",
			zap.String("run_id", runID.String()),
			zap.Int("chunk", chunk),
			zap.Int64("rows_generated", g.generated),
			zap.Float64("rows_per_sec", speed),
			zap.Duration("eta", eta))
	}

	g.logger.Info("generation complete",
		zap.String("run_id", runID.String()),
		zap.Int64("rows_generated", g.generated),
		zap.Int("chunks", chunk),
		zap.Duration("elapsed", time.Since(start)))
	return nil
}

// RowsGenerated returns how many synthetic rows have been produced.
func (g *Generator) RowsGenerated() int64 {
	return g.generated
}

// NextID returns the next unassigned identifier.
func (g *Generator) NextID() int64 {
	return g.nextID
}

// buildChunk samples batchSize vectors and runs the full repair sequence
// on each, producing output records in seed column order.
func (g *Generator) buildChunk(batchSize int) [][]string {
	vectors := g.sampler.SampleBatch(batchSize)
	rows := make([][]string, batchSize)

	for i, vec := range vectors {
		residual := g.repairTime(vec)
		g.repairNumerics(vec)
		g.repairCategoricals(vec)
		label := StressLevel(vec[g.sleepIdx], vec[g.studyIdx])
		id := g.nextID + int64(i)

		record := make([]string, len(g.output))
		for c, col := range g.output {
			switch col.kind {
			case kindIdentifier:
				record[c] = strconv.FormatInt(id, 10)
			case kindTimeIndependent:
				record[c] = strconv.FormatFloat(vec[col.modeledIdx], 'f', 1, 64)
			case kindTimeResidual:
				record[c] = strconv.FormatFloat(residual, 'f', 1, 64)
			case kindGPA:
				record[c] = strconv.FormatFloat(vec[col.modeledIdx], 'f', 2, 64)
			case kindAge:
				record[c] = strconv.FormatInt(int64(vec[col.modeledIdx]), 10)
			case kindOtherNumeric:
				record[c] = strconv.FormatFloat(vec[col.modeledIdx], 'f', -1, 64)
			case kindCategorical:
				record[c] = g.codec.Decode(col.name, int(vec[col.modeledIdx]))
			case kindDerivedLabel:
				record[c] = label
			}
		}
		rows[i] = record
	}
	return rows
}
