package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/namegen/pkg/logger"
	"github.com/dmitrymomot/namegen/pkg/namegen"
)

type namesData struct {
	Names []string `json:"names"`
}

type statsData struct {
	Pattern      string `json:"pattern"`
	Preset       string `json:"preset,omitempty"`
	Combinations uint64 `json:"combinations"`
	Min          int    `json:"min"`
	Max          int    `json:"max"`
}

type presetData struct {
	Name    string `json:"name"`
	Pattern string `json:"pattern"`
}

// compile returns the cached generator for req, compiling it on a miss.
func (a *API) compile(ctx context.Context, req patternRequest) (*namegen.Generator, error) {
	gen, hit, err := a.compiled.GetOrLoad(req.key(), func() (*namegen.Generator, error) {
		return namegen.Compile(req.pattern,
			namegen.WithCollapse(req.collapse),
			namegen.WithCapitalize(req.capitalize),
			namegen.WithSymbols(a.symbols),
			namegen.WithMaxDepth(a.cfg.MaxDepth),
		)
	})
	if err != nil {
		var syn *namegen.SyntaxError
		if errors.As(err, &syn) {
			compileErrors.WithLabelValues(syn.Kind.String()).Inc()
		}
		a.log.WarnContext(ctx, "pattern rejected",
			logger.Pattern(req.pattern), logger.Preset(req.preset), logger.Error(err))
		return nil, err
	}
	if hit {
		compileCache.WithLabelValues("hit").Inc()
	} else {
		compileCache.WithLabelValues("miss").Inc()
	}
	return gen, nil
}

func (a *API) handleGenerate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, err := parseGenerate(r.URL.Query(), a.cfg.MaxCount)
	if err != nil {
		writeError(w, r, err)
		return
	}
	gen, err := a.compile(ctx, req.patternRequest)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var rng namegen.Rand
	if req.seeded {
		rng = namegen.NewRand(req.seed)
	}

	start := time.Now()
	names, err := a.generate(ctx, gen, rng, req)
	elapsed := time.Since(start)
	generateDuration.Observe(elapsed.Seconds())
	if err != nil {
		if !errors.Is(err, namegen.ErrExhausted) {
			a.log.ErrorContext(ctx, "name generation failed", logger.Pattern(req.pattern), logger.Error(err))
		}
		writeError(w, r, err)
		return
	}
	namesGenerated.Add(float64(len(names)))

	a.log.DebugContext(ctx, "names generated",
		logger.Pattern(req.pattern), logger.Preset(req.preset),
		logger.Count(len(names)), logger.Duration(elapsed))

	meta := map[string]any{
		"combinations": gen.Combinations(),
		"min":          gen.Min(),
		"max":          gen.Max(),
	}
	if req.seeded {
		meta["seed"] = req.seed
	}
	if req.preset != "" {
		meta["preset"] = req.preset
	}
	writeData(w, namesData{Names: names}, meta)
}

func (a *API) generate(ctx context.Context, gen *namegen.Generator, rng namegen.Rand, req generateRequest) ([]string, error) {
	if !req.unique {
		return gen.GenerateN(rng, req.count), nil
	}
	names := make([]string, 0, req.count)
	for range req.count {
		name, err := namegen.GenerateUnique(ctx, gen, rng, a.store, a.cfg.UniqueAttempts)
		if err != nil {
			a.release(ctx, names)
			return nil, err
		}
		names = append(names, name)
	}
	return names, nil
}

// release frees names reserved by a request that failed before returning them.
func (a *API) release(ctx context.Context, names []string) {
	ctx = context.WithoutCancel(ctx)
	for _, name := range names {
		if err := a.store.Release(ctx, name); err != nil {
			a.log.WarnContext(ctx, "release reserved name", logger.Error(err))
		}
	}
}

func (a *API) handleStats(w http.ResponseWriter, r *http.Request) {
	req, err := parsePattern(r.URL.Query())
	if err != nil {
		writeError(w, r, err)
		return
	}
	gen, err := a.compile(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, statsFor(req, gen), nil)
}

func (a *API) handlePresets(w http.ResponseWriter, _ *http.Request) {
	names := namegen.Presets()
	out := make([]presetData, 0, len(names))
	for _, name := range names {
		p, _ := namegen.Preset(name)
		out = append(out, presetData{Name: name, Pattern: p})
	}
	writeData(w, out, map[string]any{"total": len(out)})
}

func (a *API) handlePreset(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	p, err := namegen.Preset(name)
	if err != nil {
		writeError(w, r, err)
		return
	}
	req := patternRequest{pattern: p, preset: name, collapse: true, capitalize: true}
	gen, err := a.compile(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, statsFor(req, gen), nil)
}

func statsFor(req patternRequest, gen *namegen.Generator) statsData {
	return statsData{
		Pattern:      req.pattern,
		Preset:       req.preset,
		Combinations: gen.Combinations(),
		Min:          gen.Min(),
		Max:          gen.Max(),
	}
}
