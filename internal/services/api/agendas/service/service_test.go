package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"urna/internal/modkit/repokit"
	perr "urna/internal/platform/errors"
	"urna/internal/services/api/agendas/domain"
	"urna/internal/services/api/agendas/repo"
)

// fakeTx is both the TxRunner and the Queryer it hands to fn
type fakeTx struct{}

func (f fakeTx) Exec(context.Context, string, ...any) (repokit.CommandTag, error) {
	return nil, nil
}
func (f fakeTx) Query(context.Context, string, ...any) (repokit.Rows, error) { return nil, nil }
func (f fakeTx) QueryRow(context.Context, string, ...any) repokit.Row        { return nil }
func (f fakeTx) Tx(ctx context.Context, fn func(q repokit.Queryer) error) error {
	return fn(f)
}

type fakeRepo struct {
	byID     map[string]domain.Pauta
	sessions int64
}

func newFakeRepo() *fakeRepo { return &fakeRepo{byID: map[string]domain.Pauta{}} }

func (f *fakeRepo) Insert(_ context.Context, p domain.Pauta) error {
	f.byID[p.ID] = p
	return nil
}

func (f *fakeRepo) Get(_ context.Context, id string) (domain.Pauta, error) {
	p, ok := f.byID[id]
	if !ok {
		return domain.Pauta{}, perr.NotFoundf("Pauta não encontrada: %s", id)
	}
	return p, nil
}

func (f *fakeRepo) List(_ context.Context) ([]domain.Pauta, error) {
	out := make([]domain.Pauta, 0, len(f.byID))
	for _, p := range f.byID {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeRepo) Update(_ context.Context, p domain.Pauta) error {
	if _, ok := f.byID[p.ID]; !ok {
		return perr.NotFoundf("Pauta não encontrada: %s", p.ID)
	}
	f.byID[p.ID] = p
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return perr.NotFoundf("Pauta não encontrada: %s", id)
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeRepo) CountSessions(context.Context, string) (int64, error) {
	return f.sessions, nil
}

func newSvc(t *testing.T, fr *fakeRepo) *Svc {
	t.Helper()
	binder := repokit.BindFunc[repo.Repo](func(repokit.Queryer) repo.Repo { return fr })
	return New(fakeTx{}, binder)
}

func TestCreate_SetsIDAndCreatedAt(t *testing.T) {
	t.Parallel()

	fr := newFakeRepo()
	svc := newSvc(t, fr)
	fixed := time.Date(2026, 9, 1, 12, 0, 0, 0, time.FixedZone("BRT", -3*3600))
	svc.now = func() time.Time { return fixed }

	out, err := svc.Create(context.Background(), domain.CreatePautaInput{
		Titulo:    "Reforma do estatuto",
		Descricao: "Atualiza o estatuto da cooperativa",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if out.ID == "" {
		t.Fatalf("Create did not assign an id")
	}
	if !out.CreatedAt.Equal(fixed.UTC()) {
		t.Fatalf("CreatedAt = %v want %v", out.CreatedAt, fixed.UTC())
	}
	stored, ok := fr.byID[out.ID]
	if !ok {
		t.Fatalf("pauta was not persisted")
	}
	if stored.Titulo != "Reforma do estatuto" || stored.Descricao != "Atualiza o estatuto da cooperativa" {
		t.Fatalf("persisted pauta mismatch: %+v", stored)
	}
}

func TestUpdate_ReplacesTitleAndDescription(t *testing.T) {
	t.Parallel()

	fr := newFakeRepo()
	fr.byID["p1"] = domain.Pauta{ID: "p1", Titulo: "old", Descricao: "old desc"}
	svc := newSvc(t, fr)

	out, err := svc.Update(context.Background(), "p1", domain.UpdatePautaInput{
		Titulo:    "new",
		Descricao: "new desc",
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if out.Titulo != "new" || out.Descricao != "new desc" {
		t.Fatalf("Update returned stale pauta: %+v", out)
	}
	if got := fr.byID["p1"]; got.Titulo != "new" {
		t.Fatalf("repo not updated: %+v", got)
	}
}

func TestUpdate_UnknownPautaIsNotFound(t *testing.T) {
	t.Parallel()

	svc := newSvc(t, newFakeRepo())

	_, err := svc.Update(context.Background(), "missing", domain.UpdatePautaInput{Titulo: "x", Descricao: "y"})
	if perr.CodeOf(err) != perr.ErrorCodeNotFound {
		t.Fatalf("want not found, got %v", err)
	}
	if !strings.Contains(err.Error(), "missing") {
		t.Fatalf("error should carry the id, got %q", err.Error())
	}
}

func TestDelete_ConflictsWhenSessionsExist(t *testing.T) {
	t.Parallel()

	fr := newFakeRepo()
	fr.byID["p1"] = domain.Pauta{ID: "p1"}
	fr.sessions = 2
	svc := newSvc(t, fr)

	err := svc.Delete(context.Background(), "p1")
	if perr.CodeOf(err) != perr.ErrorCodeConflict {
		t.Fatalf("want conflict, got %v", err)
	}
	if _, ok := fr.byID["p1"]; !ok {
		t.Fatalf("pauta must survive a refused delete")
	}
}

func TestDelete_RemovesWhenNoSessions(t *testing.T) {
	t.Parallel()

	fr := newFakeRepo()
	fr.byID["p1"] = domain.Pauta{ID: "p1"}
	svc := newSvc(t, fr)

	if err := svc.Delete(context.Background(), "p1"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, ok := fr.byID["p1"]; ok {
		t.Fatalf("pauta was not deleted")
	}
}
