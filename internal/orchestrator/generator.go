// Generator lifecycle: Idle → Scanning → Ready | Error. The pure pipeline
// stages (scan, map, preserve, assemble, validate) live in their own
// packages; this one owns state, scheduling, and supersession.
package orchestrator

import (
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/xkilldash9x/skelgen-cli/api/schemas"
	"github.com/xkilldash9x/skelgen-cli/internal/assembler"
	"github.com/xkilldash9x/skelgen-cli/internal/rules"
	"github.com/xkilldash9x/skelgen-cli/internal/scanner"
)

// State is the externally visible lifecycle phase.
type State string

const (
	StateIdle     State = "idle"
	StateScanning State = "scanning"
	StateReady    State = "ready"
	StateError    State = "error"
)

// Snapshot is a point-in-time view of the generator. Spec is non-nil only
// in the ready state; Err is non-empty only in the error state.
type Snapshot struct {
	State State
	Spec  *schemas.SkeletonSpec
	Err   string
}

// Options configures a Generator.
type Options struct {
	// Rules is the caller-supplied rule list, merged with builtins per scan
	// through a memo keyed by the list's content hash.
	Rules []schemas.MappingRule
	// Assemble passes through to the assembler.
	Assemble assembler.Options
	// MemoSize bounds the merged-rule cache; <= 0 picks the default.
	MemoSize int
}

// Generator drives the scan pipeline and owns its state machine. All
// methods are safe for concurrent use; results from superseded scans are
// discarded, never applied.
type Generator struct {
	logger *zap.Logger
	memo   *rules.Memo
	opts   Options

	mu         sync.Mutex
	state      State
	spec       *schemas.SkeletonSpec
	errMsg     string
	generation uint64
}

// NewGenerator builds an idle generator.
func NewGenerator(logger *zap.Logger, opts Options) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{
		logger: logger.Named("generator"),
		memo:   rules.NewMemo(logger, opts.MemoSize),
		opts:   opts,
		state:  StateIdle,
	}
}

// Request schedules a scan of root. The walk runs on its own goroutine so
// callers observe the scanning state before the CPU-bound traversal starts;
// the deferral carries no semantics beyond that. Each call bumps the
// generation, so a newer Request supersedes any in-flight scan. A nil root
// is the "no reference" condition and lands directly in the error state.
// The returned channel closes when this request settles, whether its result
// was applied or discarded.
func (g *Generator) Request(root scanner.Element) <-chan struct{} {
	done := make(chan struct{})
	scanID := uuid.NewString()

	g.mu.Lock()
	g.generation++
	gen := g.generation
	if root == nil {
		g.state = StateError
		g.errMsg = "no root element reference"
		g.spec = nil
		g.mu.Unlock()
		g.logger.Warn("Scan requested without a root reference", zap.String("scanID", scanID))
		close(done)
		return done
	}
	g.state = StateScanning
	g.errMsg = ""
	g.mu.Unlock()

	g.logger.Debug("Scan scheduled", zap.String("scanID", scanID))

	go func() {
		defer close(done)
		spec, errMsg := g.run(root)

		g.mu.Lock()
		defer g.mu.Unlock()
		if gen != g.generation {
			g.logger.Debug("Discarding stale scan result", zap.String("scanID", scanID))
			return
		}
		if errMsg != "" {
			g.state = StateError
			g.errMsg = errMsg
			g.spec = nil
			g.logger.Warn("Scan failed", zap.String("scanID", scanID), zap.String("error", errMsg))
			return
		}
		g.state = StateReady
		g.spec = spec
		g.logger.Debug("Scan complete",
			zap.String("scanID", scanID),
			zap.Int("primitives", len(spec.Children)))
	}()
	return done
}

// run executes one full pipeline pass. A panicking element source counts as
// a traversal failure and surfaces as a scan error message, never as a
// crash.
func (g *Generator) run(root scanner.Element) (spec *schemas.SkeletonSpec, errMsg string) {
	defer func() {
		if r := recover(); r != nil {
			spec = nil
			errMsg = fmt.Sprintf("element tree traversal failed: %v", r)
		}
	}()

	elements := scanner.Scan(root)
	merged := g.memo.Merge(g.opts.Rules)
	assembled := assembler.Assemble(elements, merged, g.opts.Assemble)
	if result := assembler.Validate(&assembled); !result.IsValid {
		return nil, "invalid skeleton spec: " + strings.Join(result.Errors, "; ")
	}
	return &assembled, ""
}

// SupplyPrecomputed installs an externally produced spec, bypassing the
// scanner entirely. The spec still gates through validation, and the call
// supersedes any in-flight scan.
func (g *Generator) SupplyPrecomputed(spec *schemas.SkeletonSpec) {
	result := assembler.Validate(spec)

	g.mu.Lock()
	defer g.mu.Unlock()
	g.generation++
	if !result.IsValid {
		g.state = StateError
		g.errMsg = strings.Join(result.Errors, "; ")
		g.spec = nil
		return
	}
	g.state = StateReady
	g.errMsg = ""
	g.spec = spec
}

// Snapshot returns the current state. The spec pointer is shared; callers
// treat it as immutable.
func (g *Generator) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	return Snapshot{State: g.state, Spec: g.spec, Err: g.errMsg}
}

// Generate runs the whole pipeline synchronously over already-scanned
// elements. The CLI uses this path; there is no UI to keep painting, so the
// scheduling hop buys nothing.
func Generate(logger *zap.Logger, elements []schemas.ElementMetadata, custom []schemas.MappingRule, opts assembler.Options) (*schemas.SkeletonSpec, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	merged := rules.Merge(logger, custom)
	spec := assembler.Assemble(elements, merged, opts)
	if result := assembler.Validate(&spec); !result.IsValid {
		return nil, fmt.Errorf("invalid skeleton spec: %s", strings.Join(result.Errors, "; "))
	}
	return &spec, nil
}
