package form

import (
	"fmt"
	"slices"
	"strings"

	"go.uber.org/zap"

	"quadlet-generator/internal/field"
	"quadlet-generator/internal/record"
)

// SubmitKey is the form button name, never a field.
const SubmitKey = "submit"

// Config controls Parse.
type Config struct {
	// Ignore lists keys, or option names, that are skipped entirely.
	Ignore []string

	// Logger receives state transitions at debug level. Nil disables logging.
	Logger *zap.Logger
}

// DefaultConfig returns a configuration that ignores the submit button.
func DefaultConfig() Config {
	return Config{Ignore: []string{SubmitKey}}
}

// state is the accumulation state of the parser.
type state int

const (
	stateIdle   state = iota // no record in progress
	stateScalar              // record in progress, no accumulator
	stateArray               // accumulating array elements
	statePair                // accumulating pair entries
)

func (s state) String() string {
	switch s {
	case stateIdle:
		return "idle"
	case stateScalar:
		return "scalar"
	case stateArray:
		return "array"
	case statePair:
		return "pair"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Parse groups entries into records. It keeps no state between calls.
func Parse(entries []Entry, cfg Config) (*Result, error) {
	p := newParser(cfg)

	for i, e := range entries {
		if err := p.feed(e); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
	}

	p.commit()

	return p.res, nil
}

type parser struct {
	ignore []string
	log    *zap.Logger
	res    *Result

	state  state
	option string
	rec    *record.Record

	// accumulator of the current array or pair field
	field      string
	list       []string
	pairs      *record.PairMap
	pending    string
	hasPending bool
	seen       int
}

func newParser(cfg Config) *parser {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return &parser{
		ignore: cfg.Ignore,
		log:    log,
		res:    NewResult(),
		rec:    record.New(),
	}
}

func (p *parser) feed(e Entry) error {
	raw := field.StripTag(e.Key)

	if p.ignored(raw) {
		p.log.Debug("entry ignored", zap.String("key", e.Key))
		return nil
	}

	if e.Value == "" {
		p.log.Debug("blank entry dropped", zap.String("key", e.Key))
		return nil
	}

	k, err := field.Decode(raw)
	if err != nil {
		return err
	}

	if k.Option != p.option {
		if p.state != stateIdle {
			p.commit()
		}

		p.option = k.Option
	}

	if k.IsArray {
		p.element(k, e.Value)
	} else {
		p.scalar(k, e.Value)
	}

	return nil
}

func (p *parser) ignored(raw string) bool {
	if slices.Contains(p.ignore, raw) {
		return true
	}

	option, _, _ := strings.Cut(raw, ".")

	return slices.Contains(p.ignore, option)
}

// scalar stores a single-valued field.
func (p *parser) scalar(k field.Key, value string) {
	p.flush()

	if p.rec.Has(k.Param) {
		p.log.Debug("repeated scalar starts a record", zap.String("option", k.Option), zap.String("param", k.Param))
		p.commit()
	}

	p.rec.Set(k.Param, record.Scalar(value))
	p.transition(stateScalar, k)
}

// element stores one array element or one half of a pair entry.
func (p *parser) element(k field.Key, value string) {
	if k.Role == field.RoleValue && !(p.state == statePair && p.field == k.Param && p.hasPending) {
		p.log.Debug("pair value without key dropped", zap.String("option", k.Option), zap.String("param", k.Param))
		return
	}

	switch {
	case p.accumulating() && !p.continues(k):
		p.log.Debug("array restart starts a record",
			zap.String("option", k.Option), zap.String("param", k.Param), zap.Int("index", k.Index))
		p.commit()
	case !p.accumulating() && p.rec.Has(k.Param):
		p.log.Debug("repeated array starts a record", zap.String("option", k.Option), zap.String("param", k.Param))
		p.commit()
	}

	if !p.accumulating() {
		p.field = k.Param
		p.seen = 0

		if k.IsPair() {
			p.pairs = record.NewPairMap()
			p.transition(statePair, k)
		} else {
			p.list = nil
			p.transition(stateArray, k)
		}
	}

	switch k.Role {
	case field.RoleKey:
		p.pending, p.hasPending = value, true
		p.seen++
	case field.RoleValue:
		p.pairs.Set(p.pending, value)
		p.pending, p.hasPending = "", false
	default:
		p.list = append(p.list, value)
		p.seen++
	}
}

func (p *parser) accumulating() bool {
	return p.state == stateArray || p.state == statePair
}

// continues reports whether k extends the current accumulator.
func (p *parser) continues(k field.Key) bool {
	if k.Param != p.field || k.IsPair() != (p.state == statePair) {
		return false
	}

	return k.Role == field.RoleValue || k.Index == p.seen
}

// flush moves the accumulator into the current record.
func (p *parser) flush() {
	if !p.accumulating() {
		return
	}

	switch {
	case p.state == stateArray && len(p.list) > 0:
		p.rec.Set(p.field, record.List(p.list...))
	case p.state == statePair && p.pairs.Len() > 0:
		p.rec.Set(p.field, record.Pairs(p.pairs))
	}

	p.field, p.list, p.pairs = "", nil, nil
	p.pending, p.hasPending, p.seen = "", false, 0

	next := stateScalar
	if p.rec.Len() == 0 {
		next = stateIdle
	}

	p.transition(next, field.Key{Option: p.option})
}

// commit closes the current record and appends it to the result.
func (p *parser) commit() {
	p.flush()

	if p.rec.Len() > 0 {
		p.log.Debug("record complete", zap.String("option", p.option), zap.Stringer("record", p.rec))
		p.res.Append(p.option, p.rec)
	}

	p.rec = record.New()
	p.transition(stateIdle, field.Key{Option: p.option})
}

func (p *parser) transition(next state, k field.Key) {
	if next == p.state {
		return
	}

	p.log.Debug("parser transition",
		zap.Stringer("from", p.state),
		zap.Stringer("to", next),
		zap.String("option", k.Option),
		zap.String("param", k.Param))

	p.state = next
}
