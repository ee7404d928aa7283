package tables

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"

	"github.com/cobra893021/kajicon-go/internal/domain"
)

//go:embed data/*.json
var tableFS embed.FS

const (
	fateFile      = "data/fate_numbers.json"
	archetypeFile = "data/archetypes.json"
	traitsFile    = "data/group_traits.json"
)

// EmbeddedStore loads the fate-number, archetype-name and group-trait tables
// from embedded JSON assets. The data is read-only after init and shared by
// all requests without locking.
type EmbeddedStore struct {
	once   sync.Once
	fate   map[int][]int
	names  []string
	traits map[string]domain.GroupTraitSeed
	err    error
}

func NewEmbeddedStore() *EmbeddedStore {
	return &EmbeddedStore{}
}

func (s *EmbeddedStore) init() {
	raw, err := tableFS.ReadFile(fateFile)
	if err != nil {
		s.err = fmt.Errorf("read embedded fate table: %w", err)
		return
	}
	byYear := make(map[string][]int)
	if err := json.Unmarshal(raw, &byYear); err != nil {
		s.err = fmt.Errorf("parse embedded fate table: %w", err)
		return
	}
	s.fate = make(map[int][]int, len(byYear))
	for key, row := range byYear {
		year, err := strconv.Atoi(key)
		if err != nil {
			s.err = fmt.Errorf("fate table: bad year key %q", key)
			return
		}
		if len(row) != 12 {
			s.err = fmt.Errorf("fate table: year %d has %d entries, want 12", year, len(row))
			return
		}
		for m, v := range row {
			if v < 0 || v > 59 {
				s.err = fmt.Errorf("fate table: year %d month %d value %d out of range", year, m+1, v)
				return
			}
		}
		s.fate[year] = row
	}
	for year := domain.MinYear; year <= domain.MaxYear; year++ {
		if _, ok := s.fate[year]; !ok {
			s.err = fmt.Errorf("fate table: year %d missing", year)
			return
		}
	}

	raw, err = tableFS.ReadFile(archetypeFile)
	if err != nil {
		s.err = fmt.Errorf("read embedded archetype names: %w", err)
		return
	}
	if err := json.Unmarshal(raw, &s.names); err != nil {
		s.err = fmt.Errorf("parse embedded archetype names: %w", err)
		return
	}
	if len(s.names) != 60 {
		s.err = fmt.Errorf("archetype names: got %d entries, want 60", len(s.names))
		return
	}

	raw, err = tableFS.ReadFile(traitsFile)
	if err != nil {
		s.err = fmt.Errorf("read embedded trait seeds: %w", err)
		return
	}
	if err := json.Unmarshal(raw, &s.traits); err != nil {
		s.err = fmt.Errorf("parse embedded trait seeds: %w", err)
		return
	}
	// The base→group derivation and the seed table must stay in lockstep.
	for _, code := range domain.GroupCodes() {
		if _, ok := s.traits[code]; !ok {
			s.err = fmt.Errorf("trait seeds: group %s missing", code)
			return
		}
	}
}

func (s *EmbeddedStore) FateNumber(_ context.Context, year, month int) (int, error) {
	s.once.Do(s.init)
	if s.err != nil {
		return 0, s.err
	}
	if month < 1 || month > 12 {
		return 0, domain.ErrInvalidDateFormat
	}
	row, ok := s.fate[year]
	if !ok {
		return 0, domain.ErrYearOutOfRange
	}
	return row[month-1], nil
}

func (s *EmbeddedStore) Archetype(_ context.Context, base int) (domain.Archetype, error) {
	s.once.Do(s.init)
	if s.err != nil {
		return domain.Archetype{}, s.err
	}
	if base < 1 || base > 60 {
		return domain.Archetype{}, domain.ErrBaseOutOfRange
	}
	return domain.Archetype{
		Base:  base,
		Name:  s.names[base-1],
		Group: domain.GroupForBase(base),
	}, nil
}

func (s *EmbeddedStore) Traits(_ context.Context, group string) (domain.GroupTraitSeed, error) {
	s.once.Do(s.init)
	if s.err != nil {
		return domain.GroupTraitSeed{}, s.err
	}
	seed, ok := s.traits[group]
	if !ok {
		return domain.GroupTraitSeed{}, domain.ErrGroupNotFound
	}
	return seed, nil
}
