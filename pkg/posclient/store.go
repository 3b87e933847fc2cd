package posclient

import (
	"context"
	"fmt"
	"strings"
)

// Remote is the part of Resource a Store needs.
type Remote[T any] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, row T) (string, error)
	Update(ctx context.Context, id string, row T) error
	Delete(ctx context.Context, id string) error
}

var _ Remote[Customer] = Resource[Customer]{}

// Store ties a remote collection to its local view. Writes go to the API
// first; the local copy is patched only when the API accepts them, so the
// list is never refetched after a change.
type Store[T any] struct {
	remote   Remote[T]
	view     *Collection[T]
	notifier *Notifier
	label    string
	plural   string
	setID    func(*T, string)
}

type StoreConfig[T any] struct {
	Label    string
	Plural   string
	Columns  []Column[T]
	IDOf     func(T) string
	SetID    func(*T, string)
	Notifier *Notifier
}

func NewStore[T any](remote Remote[T], cfg StoreConfig[T]) *Store[T] {
	n := cfg.Notifier
	if n == nil {
		n = NewNotifier()
	}
	return &Store[T]{
		remote:   remote,
		view:     NewCollection(cfg.IDOf, cfg.Columns...),
		notifier: n,
		label:    cfg.Label,
		plural:   cfg.Plural,
		setID:    cfg.SetID,
	}
}

func (s *Store[T]) View() *Collection[T] { return s.view }
func (s *Store[T]) Notifier() *Notifier  { return s.notifier }

func (s *Store[T]) Load(ctx context.Context) error {
	rows, err := s.remote.List(ctx)
	if err != nil {
		s.notifier.Error(fmt.Sprintf("Error fetching %s", s.plural))
		return err
	}
	s.view.SetItems(rows)
	return nil
}

func (s *Store[T]) Create(ctx context.Context, row T) (string, error) {
	id, err := s.remote.Create(ctx, row)
	if err != nil {
		s.notifier.Error(fmt.Sprintf("Failed to save %s", s.lowerLabel()))
		return "", err
	}

	s.setID(&row, id)
	s.view.Append(row)
	s.view.SetPage(1)
	s.notifier.Success(fmt.Sprintf("%s added successfully", s.label))
	return id, nil
}

func (s *Store[T]) Update(ctx context.Context, id string, row T) error {
	if err := s.remote.Update(ctx, id, row); err != nil {
		s.notifier.Error(fmt.Sprintf("Failed to save %s", s.lowerLabel()))
		return err
	}

	s.setID(&row, id)
	s.view.Replace(row)
	s.view.SetPage(1)
	s.notifier.Success(fmt.Sprintf("%s updated successfully", s.label))
	return nil
}

func (s *Store[T]) Delete(ctx context.Context, id string) error {
	if err := s.remote.Delete(ctx, id); err != nil {
		s.notifier.Error(fmt.Sprintf("Failed to delete %s", s.lowerLabel()))
		return err
	}

	s.view.Remove(id)
	s.notifier.Success(fmt.Sprintf("%s deleted successfully", s.label))
	return nil
}

func (s *Store[T]) lowerLabel() string {
	return strings.ToLower(s.label)
}
