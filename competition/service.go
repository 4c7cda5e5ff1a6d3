// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package competition

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/danielhkuo/placings/models"
	"github.com/danielhkuo/placings/notify"
)

// Documents is a per-user JSON document store (see db.Store)
type Documents interface {
	Get(ctx context.Context, collection, user string, v any) (bool, error)
	Put(ctx context.Context, collection, user string, v any) error
	Delete(ctx context.Context, collection, user string) error
	Users(ctx context.Context, collection string) ([]string, error)
}

// Notifier delivers judge invitations on a best-effort basis
type Notifier interface {
	Invite(ctx context.Context, inv notify.Invitation) error
}

type Service struct {
	docs     Documents
	notifier Notifier
	baseURL  string
	locks    *userLocks
	now      func() time.Time
}

// NewService wires the store and notifier. Judge links are built as
// baseURL + "/s/" + token.
func NewService(docs Documents, notifier Notifier, baseURL string) *Service {
	if notifier == nil {
		notifier = notify.NewLogNotifier()
	}
	return &Service{
		docs:     docs,
		notifier: notifier,
		baseURL:  baseURL,
		locks:    &userLocks{locks: make(map[string]*sync.Mutex)},
		now:      time.Now,
	}
}

// userLocks serializes read-modify-write cycles on one user's documents
type userLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func (l *userLocks) lock(user string) func() {
	l.mu.Lock()
	m, ok := l.locks[user]
	if !ok {
		m = &sync.Mutex{}
		l.locks[user] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}

// roster is the organizer-entered data of one user
type roster struct {
	judges       []models.Judge
	stages       []models.Stage
	teams        []models.Team
	distribution []models.DistributionPair
}

func requireUser(user string) error {
	if user == "" {
		return fmt.Errorf("%w: user is required", ErrMissingParameter)
	}
	return nil
}

// loadList reads a list document, returning an empty list when absent
func loadList[T any](ctx context.Context, docs Documents, collection, user string) ([]T, error) {
	list := []T{}
	if _, err := docs.Get(ctx, collection, user, &list); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}
	if list == nil {
		list = []T{}
	}
	return list, nil
}

func (s *Service) save(ctx context.Context, collection, user string, v any) error {
	if err := s.docs.Put(ctx, collection, user, v); err != nil {
		return fmt.Errorf("%w: %w", ErrInternal, err)
	}
	return nil
}

func (s *Service) drop(ctx context.Context, collection, user string) error {
	if err := s.docs.Delete(ctx, collection, user); err != nil {
		return fmt.Errorf("%w: %w", ErrInternal, err)
	}
	return nil
}

func (s *Service) loadRoster(ctx context.Context, user string) (roster, error) {
	var r roster
	var err error

	if r.judges, err = loadList[models.Judge](ctx, s.docs, models.CollectionJudges, user); err != nil {
		return roster{}, err
	}
	if r.stages, err = loadList[models.Stage](ctx, s.docs, models.CollectionStages, user); err != nil {
		return roster{}, err
	}
	if r.teams, err = loadList[models.Team](ctx, s.docs, models.CollectionTeams, user); err != nil {
		return roster{}, err
	}
	if r.distribution, err = loadList[models.DistributionPair](ctx, s.docs, models.CollectionDistribution, user); err != nil {
		return roster{}, err
	}
	return r, nil
}

// assignedStage resolves a judge's stage from the first pair naming the judge.
// A pair pointing at a deleted stage yields nil.
func assignedStage(judgeID string, distribution []models.DistributionPair, stages []models.Stage) *models.Stage {
	for _, pair := range distribution {
		if pair.JudgeID != judgeID {
			continue
		}
		for _, stage := range stages {
			if stage.ID == pair.StageID {
				return &stage
			}
		}
		return nil
	}
	return nil
}
