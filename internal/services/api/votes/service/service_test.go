package service

import (
	"context"
	"testing"
	"time"

	"urna/internal/modkit/repokit"
	perr "urna/internal/platform/errors"
	"urna/internal/platform/testkit"
	sessionsdomain "urna/internal/services/api/sessions/domain"
	"urna/internal/services/api/votes/domain"
	"urna/internal/services/api/votes/repo"
)

const (
	validCPF     = "11144477735"
	formattedCPF = "111.444.777-35"
)

func boolPtr(b bool) *bool { return &b }

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
	byID   map[string]domain.Voto
	exists bool
	latest *domain.Voto
}

func newFakeRepo() *fakeRepo { return &fakeRepo{byID: map[string]domain.Voto{}} }

func (f *fakeRepo) Insert(_ context.Context, v domain.Voto) error {
	f.byID[v.ID] = v
	return nil
}

func (f *fakeRepo) Get(_ context.Context, id string) (domain.Voto, error) {
	v, ok := f.byID[id]
	if !ok {
		return domain.Voto{}, perr.NotFoundf("Voto não encontrado: %s", id)
	}
	return v, nil
}

func (f *fakeRepo) List(_ context.Context) ([]domain.Voto, error) {
	out := make([]domain.Voto, 0, len(f.byID))
	for _, v := range f.byID {
		out = append(out, v)
	}
	return out, nil
}

func (f *fakeRepo) ListBySessao(_ context.Context, sessaoID string) ([]domain.Voto, error) {
	var out []domain.Voto
	for _, v := range f.byID {
		if v.SessaoID == sessaoID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (f *fakeRepo) Update(_ context.Context, v domain.Voto) error {
	if _, ok := f.byID[v.ID]; !ok {
		return perr.NotFoundf("Voto não encontrado: %s", v.ID)
	}
	f.byID[v.ID] = v
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, id string) error {
	delete(f.byID, id)
	return nil
}

func (f *fakeRepo) Exists(context.Context, string, string) (bool, error) {
	return f.exists, nil
}

func (f *fakeRepo) LatestByCPF(_ context.Context, cpf string) (domain.Voto, error) {
	if f.latest == nil {
		return domain.Voto{}, perr.NotFoundf("Voto não encontrado para o CPF: %s", cpf)
	}
	return *f.latest, nil
}

// fakeSessions serves one session and counts lookups
type fakeSessions struct {
	sess  sessionsdomain.Sessao
	calls int
}

func (f *fakeSessions) Get(_ context.Context, id string) (sessionsdomain.Sessao, error) {
	f.calls++
	if id != f.sess.ID {
		return sessionsdomain.Sessao{}, perr.NotFoundf("Sessão não encontrada: %s", id)
	}
	return f.sess, nil
}

func openSession(now time.Time) sessionsdomain.Sessao {
	return sessionsdomain.Sessao{
		ID:       "s1",
		PautaID:  "p1",
		OpenedAt: now.Add(-time.Minute),
		ClosesAt: now.Add(time.Minute),
	}
}

func newSvc(t *testing.T, fr *fakeRepo, fs *fakeSessions, now time.Time) *Svc {
	t.Helper()
	binder := repokit.BindFunc[repo.Repo](func(repokit.Queryer) repo.Repo { return fr })
	svc := New(fakeTx{}, binder, fs)
	svc.now = func() time.Time { return now }
	return svc
}

func TestCast_RejectsInvalidCPF(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	fs := &fakeSessions{sess: openSession(now)}
	svc := newSvc(t, newFakeRepo(), fs, now)

	_, err := svc.Cast(context.Background(), domain.CastVotoInput{
		SessaoID: "s1",
		CPF:      "12345678900",
		Voto:     boolPtr(true),
	})
	if perr.CodeOf(err) != perr.ErrorCodeInvalidArgument {
		t.Fatalf("want invalid argument, got %v", err)
	}
	if fs.calls != 0 {
		t.Fatalf("sessions must not be consulted for a bad cpf")
	}
}

func TestCast_ClosedSessionConflicts(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	sess := openSession(now)
	sess.ClosesAt = now // closing instant counts as closed
	fr := newFakeRepo()
	svc := newSvc(t, fr, &fakeSessions{sess: sess}, now)

	_, err := svc.Cast(context.Background(), domain.CastVotoInput{
		SessaoID: "s1",
		CPF:      validCPF,
		Voto:     boolPtr(true),
	})
	if perr.CodeOf(err) != perr.ErrorCodeConflict {
		t.Fatalf("want conflict, got %v", err)
	}
	if len(fr.byID) != 0 {
		t.Fatalf("no vote may be inserted on a closed session")
	}
}

func TestCast_DuplicateVoteConflicts(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	fr := newFakeRepo()
	fr.exists = true
	svc := newSvc(t, fr, &fakeSessions{sess: openSession(now)}, now)

	_, err := svc.Cast(context.Background(), domain.CastVotoInput{
		SessaoID: "s1",
		CPF:      validCPF,
		Voto:     boolPtr(true),
	})
	if perr.CodeOf(err) != perr.ErrorCodeConflict {
		t.Fatalf("want conflict, got %v", err)
	}
}

func TestCast_StoresNormalizedCPF(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	fr := newFakeRepo()
	svc := newSvc(t, fr, &fakeSessions{sess: openSession(now)}, now)

	out, err := svc.Cast(context.Background(), domain.CastVotoInput{
		SessaoID: "s1",
		CPF:      formattedCPF,
		Voto:     boolPtr(false),
	})
	if err != nil {
		t.Fatalf("Cast returned error: %v", err)
	}
	if out.CPF != validCPF {
		t.Fatalf("CPF = %q want normalized %q", out.CPF, validCPF)
	}
	if out.Voto != false {
		t.Fatalf("an explicit no must survive")
	}
	if !out.CastAt.Equal(now) {
		t.Fatalf("CastAt = %v want %v", out.CastAt, now)
	}
	if _, ok := fr.byID[out.ID]; !ok {
		t.Fatalf("vote was not persisted")
	}
}

func TestUpdate_ClosedSessionConflicts(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	sess := openSession(now)
	sess.ClosesAt = now // closing instant counts as closed
	fr := newFakeRepo()
	fr.byID["v1"] = domain.Voto{ID: "v1", SessaoID: "s1", CPF: validCPF, Voto: true}
	svc := newSvc(t, fr, &fakeSessions{sess: sess}, now)

	_, err := svc.Update(context.Background(), "v1", domain.UpdateVotoInput{
		SessaoID: "s1",
		CPF:      validCPF,
		Voto:     boolPtr(false),
	})
	if perr.CodeOf(err) != perr.ErrorCodeConflict {
		t.Fatalf("want conflict, got %v", err)
	}
	if !fr.byID["v1"].Voto {
		t.Fatalf("vote must survive a refused update unchanged")
	}
}

func TestUpdate_ResetsCastAtAndRetargets(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	sess := openSession(now)
	sess.ID = "s2" // the session named by the update, not the vote's original one
	fr := newFakeRepo()
	fr.byID["v1"] = domain.Voto{
		ID:       "v1",
		SessaoID: "s1",
		CPF:      validCPF,
		Voto:     true,
		CastAt:   now.Add(-30 * time.Second),
	}
	svc := newSvc(t, fr, &fakeSessions{sess: sess}, now)

	out, err := svc.Update(context.Background(), "v1", domain.UpdateVotoInput{
		SessaoID: "s2",
		CPF:      formattedCPF,
		Voto:     boolPtr(false),
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if out.SessaoID != "s2" {
		t.Fatalf("SessaoID = %q want %q", out.SessaoID, "s2")
	}
	if out.CPF != validCPF {
		t.Fatalf("CPF = %q want normalized %q", out.CPF, validCPF)
	}
	if out.Voto {
		t.Fatalf("choice was not overwritten")
	}
	if !out.CastAt.Equal(now) {
		t.Fatalf("CastAt = %v want reset to %v", out.CastAt, now)
	}
	if got := fr.byID["v1"]; got != out {
		t.Fatalf("stored vote %+v diverges from returned %+v", got, out)
	}
}

func TestUpdate_UnknownVoteIsNotFound(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	svc := newSvc(t, newFakeRepo(), &fakeSessions{sess: openSession(now)}, now)

	_, err := svc.Update(context.Background(), "missing", domain.UpdateVotoInput{
		SessaoID: "s1",
		CPF:      validCPF,
		Voto:     boolPtr(true),
	})
	if perr.CodeOf(err) != perr.ErrorCodeNotFound {
		t.Fatalf("want not found, got %v", err)
	}
}

func TestList_UnknownSessionIsError(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	svc := newSvc(t, newFakeRepo(), &fakeSessions{sess: openSession(now)}, now)

	_, err := svc.List(context.Background(), "missing")
	if perr.CodeOf(err) != perr.ErrorCodeNotFound {
		t.Fatalf("want not found, got %v", err)
	}
}

func TestList_NoFilterReturnsAll(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	fr := newFakeRepo()
	fr.byID["v1"] = domain.Voto{ID: "v1", SessaoID: "s1"}
	fr.byID["v2"] = domain.Voto{ID: "v2", SessaoID: "s2"}
	fs := &fakeSessions{sess: openSession(now)}
	svc := newSvc(t, fr, fs, now)

	out, err := svc.List(context.Background(), "")
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("len = %d want 2", len(out))
	}
	if fs.calls != 0 {
		t.Fatalf("unfiltered list must not look up a session")
	}
}

func TestDelete_AfterCloseConflicts(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	sess := openSession(now)
	sess.ClosesAt = now.Add(-time.Second)
	fr := newFakeRepo()
	fr.byID["v1"] = domain.Voto{ID: "v1", SessaoID: "s1", CPF: validCPF}
	svc := newSvc(t, fr, &fakeSessions{sess: sess}, now)

	err := svc.Delete(context.Background(), "v1")
	if perr.CodeOf(err) != perr.ErrorCodeConflict {
		t.Fatalf("want conflict, got %v", err)
	}
	if _, ok := fr.byID["v1"]; !ok {
		t.Fatalf("vote must survive a refused delete")
	}
}

func TestDelete_WhileOpenRemoves(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	fr := newFakeRepo()
	fr.byID["v1"] = domain.Voto{ID: "v1", SessaoID: "s1", CPF: validCPF}
	svc := newSvc(t, fr, &fakeSessions{sess: openSession(now)}, now)

	if err := svc.Delete(context.Background(), "v1"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, ok := fr.byID["v1"]; ok {
		t.Fatalf("vote was not deleted")
	}
}

func TestHasVoted(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	fr := newFakeRepo()
	fr.exists = true
	svc := newSvc(t, fr, &fakeSessions{sess: openSession(now)}, now)

	out, err := svc.HasVoted(context.Background(), formattedCPF, "s1")
	if err != nil {
		t.Fatalf("HasVoted returned error: %v", err)
	}
	if !out.JaVotou {
		t.Fatalf("want ja_votou true")
	}
	if out.CPF != validCPF {
		t.Fatalf("CPF = %q want normalized %q", out.CPF, validCPF)
	}
}

func TestHasVoted_UnknownSessionIsError(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	svc := newSvc(t, newFakeRepo(), &fakeSessions{sess: openSession(now)}, now)

	_, err := svc.HasVoted(context.Background(), validCPF, "missing")
	if perr.CodeOf(err) != perr.ErrorCodeNotFound {
		t.Fatalf("want not found, got %v", err)
	}
}

func TestFindByCPF_RejectsInvalidCPF(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	svc := newSvc(t, newFakeRepo(), &fakeSessions{sess: openSession(now)}, now)

	_, err := svc.FindByCPF(context.Background(), "00000000000")
	if perr.CodeOf(err) != perr.ErrorCodeInvalidArgument {
		t.Fatalf("want invalid argument, got %v", err)
	}
}

func TestNew_GuardsDependencies(t *testing.T) {
	t.Parallel()

	binder := repokit.BindFunc[repo.Repo](func(repokit.Queryer) repo.Repo { return newFakeRepo() })
	sessions := &fakeSessions{}

	testkit.MustPanic(t, func() { New(nil, binder, sessions) })
	testkit.MustPanic(t, func() { New(fakeTx{}, nil, sessions) })
	testkit.MustPanic(t, func() { New(fakeTx{}, binder, nil) })
	testkit.MustNotPanic(t, func() { New(fakeTx{}, binder, sessions) })
}

func TestValidateCPF(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	svc := newSvc(t, newFakeRepo(), &fakeSessions{sess: openSession(now)}, now)

	got := svc.ValidateCPF(context.Background(), domain.ValidarCPFInput{CPF: formattedCPF})
	if !got.Valido || got.CPF != validCPF {
		t.Fatalf("valid cpf misjudged: %+v", got)
	}

	got = svc.ValidateCPF(context.Background(), domain.ValidarCPFInput{CPF: "12345678900"})
	if got.Valido {
		t.Fatalf("invalid cpf accepted: %+v", got)
	}
}
