// Package memory implements the repository contracts on an in-process
// go-cache instance. It backs local development and tests.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"regexp"

	"notebook-query-be/internal/entity"
	"notebook-query-be/internal/repository/contract"

	"github.com/patrickmn/go-cache"
)

var idPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

type Store struct {
	notebooks  *cache.Cache
	paragraphs *cache.Cache
}

func NewStore() *Store {
	return &Store{
		notebooks:  cache.New(cache.NoExpiration, 0),
		paragraphs: cache.New(cache.NoExpiration, 0),
	}
}

func ValidId(id string) bool {
	return idPattern.MatchString(id)
}

func (s *Store) PutNotebook(n entity.Notebook) error {
	if !ValidId(n.Id) {
		return contract.MalformedId(n.Id)
	}
	s.notebooks.Set(n.Id, cloneNotebook(&n), cache.NoExpiration)
	return nil
}

func (s *Store) PutParagraph(p entity.Paragraph) error {
	if !ValidId(p.Id) {
		return contract.MalformedId(p.Id)
	}
	s.paragraphs.Set(p.Id, &p, cache.NoExpiration)
	return nil
}

func (s *Store) Notebooks() contract.NotebookRepository {
	return &notebookRepository{store: s}
}

func (s *Store) Paragraphs() contract.ParagraphRepository {
	return &paragraphRepository{store: s}
}

type seedFile struct {
	Notebooks []struct {
		Id         string   `json:"_id"`
		Name       string   `json:"name"`
		Paragraphs []string `json:"paragraphs"`
	} `json:"notebooks"`
	Paragraphs []struct {
		Id     string `json:"_id"`
		Code   string `json:"code"`
		Result string `json:"result"`
	} `json:"paragraphs"`
}

// LoadSeedFile reads a JSON file laid out like the persisted collections:
// {"notebooks": [{"_id", "name", "paragraphs"}], "paragraphs": [{"_id", "code", "result"}]}.
func (s *Store) LoadSeedFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read seed file: %w", err)
	}

	var seed seedFile
	if err := json.Unmarshal(raw, &seed); err != nil {
		return fmt.Errorf("decode seed file %s: %w", path, err)
	}

	for _, n := range seed.Notebooks {
		if err := s.PutNotebook(entity.Notebook{Id: n.Id, Name: n.Name, Paragraphs: n.Paragraphs}); err != nil {
			return fmt.Errorf("seed notebook: %w", err)
		}
	}
	for _, p := range seed.Paragraphs {
		if err := s.PutParagraph(entity.Paragraph{Id: p.Id, Code: p.Code, Result: p.Result}); err != nil {
			return fmt.Errorf("seed paragraph: %w", err)
		}
	}
	return nil
}

type notebookRepository struct {
	store *Store
}

func (r *notebookRepository) FindById(_ context.Context, id string) (*entity.Notebook, error) {
	if !ValidId(id) {
		return nil, contract.MalformedId(id)
	}
	x, found := r.store.notebooks.Get(id)
	if !found {
		return nil, contract.ErrNotFound
	}
	return cloneNotebook(x.(*entity.Notebook)), nil
}

func (r *notebookRepository) FindAll(_ context.Context) ([]*entity.Notebook, error) {
	items := r.store.notebooks.Items()
	notebooks := make([]*entity.Notebook, 0, len(items))
	for _, item := range items {
		notebooks = append(notebooks, cloneNotebook(item.Object.(*entity.Notebook)))
	}
	return notebooks, nil
}

type paragraphRepository struct {
	store *Store
}

func (r *paragraphRepository) FindById(_ context.Context, id string) (*entity.Paragraph, error) {
	if !ValidId(id) {
		return nil, contract.MalformedId(id)
	}
	x, found := r.store.paragraphs.Get(id)
	if !found {
		return nil, contract.ErrNotFound
	}
	p := *x.(*entity.Paragraph)
	return &p, nil
}

// cloneNotebook hands out snapshots so callers cannot mutate stored state.
func cloneNotebook(n *entity.Notebook) *entity.Notebook {
	c := *n
	c.Paragraphs = append([]string{}, n.Paragraphs...)
	return &c
}
