// Package engine orchestrates the calculation chain: civil time → Julian Day
// → sidereal time → ayanamsa-corrected longitudes → ascendant → Panchang →
// muhurat score. It is the function-call surface consumed by higher-level
// modules; every method returns a fully populated value or a typed error.
package engine

import (
	"context"
	"encoding/json"

	"github.com/vedicastro/panchang/internal/astrotime"
	"github.com/vedicastro/panchang/internal/cache"
	"github.com/vedicastro/panchang/internal/ephemeris"
	"github.com/vedicastro/panchang/internal/model"
	"github.com/vedicastro/panchang/internal/muhurat"
	"github.com/vedicastro/panchang/internal/panchang"
	"github.com/vedicastro/panchang/internal/transform"
)

// Engine wires the calculation stages together. All state is read-only after
// construction; methods are safe for concurrent use.
type Engine struct {
	positions  ephemeris.PositionProvider
	ayanamsa   ephemeris.Ayanamsa
	classifier *panchang.Classifier
	scorer     *muhurat.Scorer
	snapCache  cache.Cache
	config     *model.Config
}

// New builds an engine from configuration, loading table and rule overrides
// if the config names any.
func New(cfg *model.Config) (*Engine, error) {
	if cfg == nil {
		cfg = model.DefaultConfig()
	}

	tables, err := panchang.LoadTables(cfg.Scoring.TablesFile)
	if err != nil {
		return nil, err
	}
	rules, err := muhurat.LoadRules(cfg.Scoring.RulesFile)
	if err != nil {
		return nil, err
	}

	var snapCache cache.Cache
	if cfg.Cache.Enabled {
		if cfg.Cache.Dir != "" {
			snapCache = cache.NewLayeredCache(cfg.Cache.TTL, cfg.Cache.Dir, cfg.Cache.TTL)
		} else {
			snapCache = cache.NewMemoryCache(cfg.Cache.TTL, 2*cfg.Cache.TTL)
		}
	}

	return &Engine{
		positions:  ephemeris.NewApproximation(),
		ayanamsa:   ephemeris.NewLahiriFromConfig(cfg.Ayanamsa),
		classifier: panchang.NewClassifier(tables),
		scorer:     muhurat.NewScorer(cfg.Scoring, rules),
		snapCache:  snapCache,
		config:     cfg,
	}, nil
}

// Chart computes the positional chart for one (date, location) query.
func (e *Engine) Chart(ct model.CivilTime, loc model.Location) (*model.Chart, error) {
	if err := astrotime.ValidateLocation(loc); err != nil {
		return nil, err
	}

	// 1. Civil time → Julian Day
	jd, err := astrotime.JulianDay(ct)
	if err != nil {
		return nil, err
	}
	moment := astrotime.Moment(jd)

	// 2. Sidereal time at the location
	gmst := astrotime.GMST(jd)
	lst := astrotime.LST(gmst, loc.Longitude)

	// 3. Tropical longitudes
	tropical, err := e.positions.Tropical(jd)
	if err != nil {
		return nil, err
	}

	// 4. Ayanamsa correction → sidereal longitudes
	ayanamsa := e.ayanamsa.At(ct.Year)
	sidereal := transform.TropicalToSidereal(tropical, ayanamsa)

	// 5. Horizon points
	asc, err := transform.AscendantAt(lst, loc.Latitude, transform.MeanObliquity)
	if err != nil {
		return nil, err
	}

	return &model.Chart{
		Date:      ct,
		Location:  loc,
		Moment:    moment,
		Ayanamsa:  ayanamsa,
		Tropical:  tropical,
		Sidereal:  sidereal,
		Ascendant: asc,
		Midheaven: transform.Midheaven(lst),
		LST:       lst,
	}, nil
}

// Panchang computes the five calendrical elements for one (date, location)
// pair, consulting the snapshot cache first when enabled.
func (e *Engine) Panchang(ct model.CivilTime, loc model.Location) (model.PanchangSnapshot, error) {
	if err := astrotime.ValidateLocation(loc); err != nil {
		return model.PanchangSnapshot{}, err
	}
	if err := astrotime.Validate(ct); err != nil {
		return model.PanchangSnapshot{}, err
	}

	key := cache.SnapshotKey(ct, loc)
	if e.snapCache != nil {
		if data, found := e.snapCache.Get(key); found {
			var snap model.PanchangSnapshot
			if err := json.Unmarshal(data, &snap); err == nil {
				return snap, nil
			}
			// Corrupt entry: drop it and recompute
			_ = e.snapCache.Delete(key)
		}
	}

	// 1. Civil time → Julian Day
	jd, err := astrotime.JulianDay(ct)
	if err != nil {
		return model.PanchangSnapshot{}, err
	}

	// 2. Tropical → sidereal longitudes
	tropical, err := e.positions.Tropical(jd)
	if err != nil {
		return model.PanchangSnapshot{}, err
	}
	sidereal := transform.TropicalToSidereal(tropical, e.ayanamsa.At(ct.Year))

	// 3. Classify
	snap := e.classifier.Snapshot(ct, loc, sidereal[model.Sun], sidereal[model.Moon])

	if e.snapCache != nil {
		if data, err := json.Marshal(snap); err == nil {
			_ = e.snapCache.Set(key, data, e.config.Cache.TTL)
		}
	}
	return snap, nil
}

// Score computes the Panchang and its muhurat score for one activity. The
// score itself is never cached: it varies per activity.
func (e *Engine) Score(ct model.CivilTime, loc model.Location, activity string, slot muhurat.TimeSlot) (model.PanchangSnapshot, model.MuhuratScore, error) {
	snap, err := e.Panchang(ct, loc)
	if err != nil {
		return model.PanchangSnapshot{}, model.MuhuratScore{}, err
	}
	return snap, e.scorer.Score(snap, activity, slot), nil
}

// FindWindows scans a civil date range for auspicious windows.
func (e *Engine) FindWindows(ctx context.Context, start, end model.CivilTime, loc model.Location, prefs muhurat.Preferences, log muhurat.Logger) ([]model.Candidate, error) {
	if err := astrotime.ValidateLocation(loc); err != nil {
		return nil, err
	}
	finder := muhurat.NewFinder(e, e.scorer, e.config.Search, log)
	return finder.FindWindows(ctx, start, end, loc, prefs)
}
