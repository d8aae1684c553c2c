package service

import (
	"context"
	"testing"
	"time"

	"urna/internal/modkit/repokit"
	perr "urna/internal/platform/errors"
	agendasdomain "urna/internal/services/api/agendas/domain"
	"urna/internal/services/api/sessions/domain"
	"urna/internal/services/api/sessions/repo"
)

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
	byID    map[string]domain.Sessao
	hasOpen bool
}

func newFakeRepo() *fakeRepo { return &fakeRepo{byID: map[string]domain.Sessao{}} }

func (f *fakeRepo) Insert(_ context.Context, s domain.Sessao) error {
	f.byID[s.ID] = s
	return nil
}

func (f *fakeRepo) Get(_ context.Context, id string) (domain.Sessao, error) {
	s, ok := f.byID[id]
	if !ok {
		return domain.Sessao{}, perr.NotFoundf("Sessão não encontrada: %s", id)
	}
	return s, nil
}

func (f *fakeRepo) List(_ context.Context) ([]domain.Sessao, error) {
	out := make([]domain.Sessao, 0, len(f.byID))
	for _, s := range f.byID {
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeRepo) Update(_ context.Context, s domain.Sessao) error {
	if _, ok := f.byID[s.ID]; !ok {
		return perr.NotFoundf("Sessão não encontrada: %s", s.ID)
	}
	f.byID[s.ID] = s
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, id string) error {
	delete(f.byID, id)
	return nil
}

func (f *fakeRepo) HasOpen(context.Context, string, time.Time) (bool, error) {
	return f.hasOpen, nil
}

// fakeAgendas knows exactly one agenda id
type fakeAgendas struct {
	known string
	calls int
}

func (f *fakeAgendas) Get(_ context.Context, id string) (agendasdomain.Pauta, error) {
	f.calls++
	if id != f.known {
		return agendasdomain.Pauta{}, perr.NotFoundf("Pauta não encontrada: %s", id)
	}
	return agendasdomain.Pauta{ID: id, Titulo: "pauta"}, nil
}

func newSvc(t *testing.T, fr *fakeRepo, ag *fakeAgendas, now time.Time) *Svc {
	t.Helper()
	binder := repokit.BindFunc[repo.Repo](func(repokit.Queryer) repo.Repo { return fr })
	svc := New(fakeTx{}, binder, ag)
	svc.now = func() time.Time { return now }
	return svc
}

func TestOpen_DefaultsToOneMinute(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	fr := newFakeRepo()
	svc := newSvc(t, fr, &fakeAgendas{known: "p1"}, now)

	out, err := svc.Open(context.Background(), domain.OpenSessaoInput{PautaID: "p1"})
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	if !out.OpenedAt.Equal(now) {
		t.Fatalf("OpenedAt = %v want %v", out.OpenedAt, now)
	}
	if got := out.ClosesAt.Sub(out.OpenedAt); got != DefaultDuration {
		t.Fatalf("duration = %v want %v", got, DefaultDuration)
	}
	if _, ok := fr.byID[out.ID]; !ok {
		t.Fatalf("session was not persisted")
	}
}

func TestOpen_NegativeDurationFallsBack(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	svc := newSvc(t, newFakeRepo(), &fakeAgendas{known: "p1"}, now)

	out, err := svc.Open(context.Background(), domain.OpenSessaoInput{PautaID: "p1", DuracaoMinutos: -5})
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	if got := out.ClosesAt.Sub(out.OpenedAt); got != DefaultDuration {
		t.Fatalf("duration = %v want %v", got, DefaultDuration)
	}
}

func TestOpen_UsesRequestedDuration(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	svc := newSvc(t, newFakeRepo(), &fakeAgendas{known: "p1"}, now)

	out, err := svc.Open(context.Background(), domain.OpenSessaoInput{PautaID: "p1", DuracaoMinutos: 5})
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	if got := out.ClosesAt.Sub(out.OpenedAt); got != 5*time.Minute {
		t.Fatalf("duration = %v want 5m", got)
	}
}

func TestOpen_SecondOpenSessionConflicts(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	fr := newFakeRepo()
	fr.hasOpen = true
	svc := newSvc(t, fr, &fakeAgendas{known: "p1"}, now)

	_, err := svc.Open(context.Background(), domain.OpenSessaoInput{PautaID: "p1"})
	if perr.CodeOf(err) != perr.ErrorCodeConflict {
		t.Fatalf("want conflict, got %v", err)
	}
	if len(fr.byID) != 0 {
		t.Fatalf("no session may be inserted on conflict")
	}
}

func TestOpen_UnknownAgendaIsNotFound(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	fr := newFakeRepo()
	svc := newSvc(t, fr, &fakeAgendas{known: "p1"}, now)

	_, err := svc.Open(context.Background(), domain.OpenSessaoInput{PautaID: "other"})
	if perr.CodeOf(err) != perr.ErrorCodeNotFound {
		t.Fatalf("want not found, got %v", err)
	}
	if len(fr.byID) != 0 {
		t.Fatalf("no session may be inserted for an unknown agenda")
	}
}

func TestUpdate_PreservesOpenedAtAndRecomputesClose(t *testing.T) {
	t.Parallel()

	openedAt := time.Date(2026, 9, 1, 11, 0, 0, 0, time.UTC)
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	fr := newFakeRepo()
	fr.byID["s1"] = domain.Sessao{ID: "s1", PautaID: "p1", OpenedAt: openedAt, ClosesAt: openedAt.Add(time.Minute)}
	svc := newSvc(t, fr, &fakeAgendas{known: "p2"}, now)

	out, err := svc.Update(context.Background(), "s1", domain.UpdateSessaoInput{PautaID: "p2", DuracaoMinutos: 2})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if !out.OpenedAt.Equal(openedAt) {
		t.Fatalf("OpenedAt moved: %v want %v", out.OpenedAt, openedAt)
	}
	if want := now.Add(2 * time.Minute); !out.ClosesAt.Equal(want) {
		t.Fatalf("ClosesAt = %v want %v", out.ClosesAt, want)
	}
	if out.PautaID != "p2" {
		t.Fatalf("PautaID = %q want p2", out.PautaID)
	}
}
