package service

import (
	"context"
	"testing"
	"time"

	"urna/internal/modkit/repokit"
	perr "urna/internal/platform/errors"
	agendasdomain "urna/internal/services/api/agendas/domain"
	"urna/internal/services/api/dashboard/domain"
	"urna/internal/services/api/dashboard/repo"
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
	sim, nao  int64
	tallyHits int

	counts  repo.Counts
	recent  []domain.PautaResumo
	active  []domain.SessaoAtiva
	ranking []domain.RankingItem
	turnout []repo.SessionVotes

	castVotes []repo.CastVote
	castStart time.Time
	castEnd   time.Time
}

func (f *fakeRepo) TallyForPauta(context.Context, string) (int64, int64, error) {
	f.tallyHits++
	return f.sim, f.nao, nil
}

func (f *fakeRepo) Counts(context.Context, time.Time) (repo.Counts, error) {
	return f.counts, nil
}

func (f *fakeRepo) RecentPautas(context.Context, int) ([]domain.PautaResumo, error) {
	return f.recent, nil
}

func (f *fakeRepo) ActiveSessions(context.Context, time.Time) ([]domain.SessaoAtiva, error) {
	return f.active, nil
}

func (f *fakeRepo) Ranking(context.Context, int) ([]domain.RankingItem, error) {
	return f.ranking, nil
}

func (f *fakeRepo) SessionTurnout(context.Context) ([]repo.SessionVotes, error) {
	return f.turnout, nil
}

func (f *fakeRepo) CastVotes(_ context.Context, start, end time.Time) ([]repo.CastVote, error) {
	f.castStart, f.castEnd = start, end
	return f.castVotes, nil
}

type fakeAgendas struct {
	known string
}

func (f *fakeAgendas) Get(_ context.Context, id string) (agendasdomain.Pauta, error) {
	if id != f.known {
		return agendasdomain.Pauta{}, perr.NotFoundf("Pauta não encontrada: %s", id)
	}
	return agendasdomain.Pauta{ID: id, Titulo: "Reforma do estatuto"}, nil
}

func newSvc(t *testing.T, fr *fakeRepo, eligible int, now time.Time) *Svc {
	t.Helper()
	binder := repokit.BindFunc[repo.Repo](func(repokit.Queryer) repo.Repo { return fr })
	svc := New(fakeTx{}, binder, &fakeAgendas{known: "p1"}, eligible)
	svc.now = func() time.Time { return now }
	return svc
}

func TestResultado_Tallies(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	fr := &fakeRepo{sim: 42, nao: 17}
	svc := newSvc(t, fr, 0, now)

	out, err := svc.Resultado(context.Background(), "p1")
	if err != nil {
		t.Fatalf("Resultado returned error: %v", err)
	}
	if out.Sim != 42 || out.Nao != 17 || out.Total != 59 {
		t.Fatalf("tally mismatch: %+v", out)
	}
	if out.Titulo != "Reforma do estatuto" {
		t.Fatalf("titulo mismatch: %+v", out)
	}
}

func TestResultado_UnknownAgendaSkipsTally(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	fr := &fakeRepo{}
	svc := newSvc(t, fr, 0, now)

	_, err := svc.Resultado(context.Background(), "missing")
	if perr.CodeOf(err) != perr.ErrorCodeNotFound {
		t.Fatalf("want not found, got %v", err)
	}
	if fr.tallyHits != 0 {
		t.Fatalf("tally must not run for an unknown agenda")
	}
}

func TestResumo_Percentages(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	fr := &fakeRepo{
		counts: repo.Counts{Pautas: 10, Sessoes: 14, SessoesAbertas: 2, Votos: 4, VotosSim: 3},
		active: []domain.SessaoAtiva{
			{ID: "s1", ClosesAt: now.Add(4*time.Minute + 30*time.Second)},
			{ID: "s2", ClosesAt: now.Add(20 * time.Second)},
		},
	}
	svc := newSvc(t, fr, 0, now)

	out, err := svc.Resumo(context.Background())
	if err != nil {
		t.Fatalf("Resumo returned error: %v", err)
	}
	if out.PercentualSim != 75 || out.PercentualNao != 25 {
		t.Fatalf("percentages = %v/%v want 75/25", out.PercentualSim, out.PercentualNao)
	}
	if out.SessoesEncerradas != 12 {
		t.Fatalf("SessoesEncerradas = %d want 12", out.SessoesEncerradas)
	}
	if got := out.SessoesAtivas[0].TempoRestante; got != "4 minutos" {
		t.Fatalf("TempoRestante = %q want %q", got, "4 minutos")
	}
	if got := out.SessoesAtivas[1].TempoRestante; got != "Menos de 1 minuto" {
		t.Fatalf("TempoRestante = %q want %q", got, "Menos de 1 minuto")
	}
}

func TestResumo_NoVotesMeansZeroPercent(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	svc := newSvc(t, &fakeRepo{}, 0, now)

	out, err := svc.Resumo(context.Background())
	if err != nil {
		t.Fatalf("Resumo returned error: %v", err)
	}
	if out.PercentualSim != 0 || out.PercentualNao != 0 {
		t.Fatalf("percentages must be zero with no votes: %+v", out)
	}
}

func TestRanking_RejectsNonPositiveLimit(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	svc := newSvc(t, &fakeRepo{}, 0, now)

	for _, limite := range []int{0, -1} {
		if _, err := svc.Ranking(context.Background(), limite); perr.CodeOf(err) != perr.ErrorCodeInvalidArgument {
			t.Fatalf("limite %d: want invalid argument, got %v", limite, err)
		}
	}
}

func TestParticipacao_ComputesAgainstEligible(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	fr := &fakeRepo{turnout: []repo.SessionVotes{
		{SessaoID: "s1", PautaID: "p1", Titulo: "a", Votos: 40},
	}}
	svc := newSvc(t, fr, 200, now)

	out, err := svc.Participacao(context.Background())
	if err != nil {
		t.Fatalf("Participacao returned error: %v", err)
	}
	if len(out) != 1 || out[0].Percentual != 20 {
		t.Fatalf("turnout mismatch: %+v", out)
	}
}

func TestBaixaParticipacao_FiltersAtThreshold(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	fr := &fakeRepo{turnout: []repo.SessionVotes{
		{SessaoID: "s1", Votos: 49},
		{SessaoID: "s2", Votos: 50}, // exactly 50% is not low
		{SessaoID: "s3", Votos: 51},
	}}
	svc := newSvc(t, fr, 100, now) // eligible defaults exercised elsewhere

	out, err := svc.BaixaParticipacao(context.Background())
	if err != nil {
		t.Fatalf("BaixaParticipacao returned error: %v", err)
	}
	if len(out) != 1 || out[0].SessaoID != "s1" {
		t.Fatalf("filter mismatch: %+v", out)
	}
}

func TestTendencia_RejectsBadInput(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	svc := newSvc(t, &fakeRepo{}, 0, now)
	ctx := context.Background()

	cases := []struct {
		name              string
		inicio, fim, gran string
	}{
		{"bad start", "2026-13-01", "2026-09-01", domain.GranularidadeDia},
		{"bad end", "2026-09-01", "not-a-date", domain.GranularidadeDia},
		{"reversed range", "2026-09-02", "2026-09-01", domain.GranularidadeDia},
		{"bad granularity", "2026-09-01", "2026-09-02", "HORA"},
	}
	for _, tc := range cases {
		if _, err := svc.Tendencia(ctx, tc.inicio, tc.fim, tc.gran); perr.CodeOf(err) != perr.ErrorCodeInvalidArgument {
			t.Fatalf("%s: want invalid argument, got %v", tc.name, err)
		}
	}
}

func TestTendencia_BucketsByDaySorted(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	fr := &fakeRepo{castVotes: []repo.CastVote{
		{At: time.Date(2026, 8, 2, 9, 0, 0, 0, time.UTC), Voto: false},
		{At: time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC), Voto: true},
		{At: time.Date(2026, 8, 1, 23, 59, 0, 0, time.UTC), Voto: true},
	}}
	svc := newSvc(t, fr, 0, now)

	out, err := svc.Tendencia(context.Background(), "2026-08-01", "2026-08-02", domain.GranularidadeDia)
	if err != nil {
		t.Fatalf("Tendencia returned error: %v", err)
	}
	want := []domain.TendenciaBucket{
		{Periodo: "2026-08-01", Sim: 2, Nao: 0},
		{Periodo: "2026-08-02", Sim: 0, Nao: 1},
	}
	if len(out) != len(want) {
		t.Fatalf("len = %d want %d: %+v", len(out), len(want), out)
	}
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("bucket %d = %+v want %+v", i, out[i], want[i])
		}
	}
	// the end date is inclusive, so the repo sees the next midnight
	if wantEnd := time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC); !fr.castEnd.Equal(wantEnd) {
		t.Fatalf("query end = %v want %v", fr.castEnd, wantEnd)
	}
}

func TestBucketLabel(t *testing.T) {
	t.Parallel()

	// Dec 30 2024 falls in ISO week 1 of 2025
	isoEdge := time.Date(2024, 12, 30, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		at   time.Time
		gran string
		want string
	}{
		{time.Date(2026, 8, 1, 9, 30, 0, 0, time.UTC), domain.GranularidadeDia, "2026-08-01"},
		{time.Date(2026, 8, 1, 9, 30, 0, 0, time.UTC), domain.GranularidadeMes, "2026-08"},
		{isoEdge, domain.GranularidadeSemana, "2025-W01"},
	}
	for _, tc := range cases {
		if got := BucketLabel(tc.at, tc.gran); got != tc.want {
			t.Fatalf("BucketLabel(%v, %s) = %q want %q", tc.at, tc.gran, got, tc.want)
		}
	}
}

func TestRemainingLabel(t *testing.T) {
	t.Parallel()

	cases := []struct {
		d    time.Duration
		want string
	}{
		{30 * time.Second, "Menos de 1 minuto"},
		{59 * time.Second, "Menos de 1 minuto"},
		{time.Minute, "1 minuto"},
		{119 * time.Second, "1 minuto"},
		{2*time.Minute + 30*time.Second, "2 minutos"},
	}
	for _, tc := range cases {
		if got := RemainingLabel(tc.d); got != tc.want {
			t.Fatalf("RemainingLabel(%v) = %q want %q", tc.d, got, tc.want)
		}
	}
}
