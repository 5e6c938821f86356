package rowstore

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/RichardKnop/rowstore/internal/pkg/logging"
)

var (
	gen        = newDataGen(uint64(time.Now().Unix()))
	testLogger *zap.Logger
)

func init() {
	logConf := logging.DefaultConfig()

	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		level = "info"
	}

	l, err := logging.ParseLevel(level)
	if err != nil {
		panic(err)
	}
	logConf.Level = zap.NewAtomicLevelAt(l)

	testLogger, err = logConf.Build()
	if err != nil {
		panic(err)
	}
}

type dataGen struct {
	*gofakeit.Faker
}

func newDataGen(seed uint64) *dataGen {
	g := dataGen{
		Faker: gofakeit.New(seed),
	}

	return &g
}

func (g *dataGen) Row() Row {
	return Row{
		ID:       g.Uint32(),
		Username: fitInto(g.Username(), UsernameSize),
		Email:    fitInto(g.Email(), EmailSize),
	}
}

func (g *dataGen) Rows(number int) []Row {
	rows := make([]Row, 0, number)
	for range number {
		rows = append(rows, g.Row())
	}
	return rows
}

// FullRow returns a row with both text columns filled to their maximum size
func (g *dataGen) FullRow() Row {
	return Row{
		ID:       g.Uint32(),
		Username: g.lettersOfLength(UsernameSize),
		Email:    g.lettersOfLength(EmailSize-len("@example.com")) + "@example.com",
	}
}

func (g *dataGen) lettersOfLength(length int) string {
	return g.LetterN(uint(length))
}

func fitInto(s string, size int) string {
	if len(s) > size {
		return s[0:size]
	}
	return s
}

func newTestTable(maxPages int) *Table {
	return NewTable(testLogger, NewPager(testLogger, maxPages))
}

func mustInsert(t *testing.T, ctx context.Context, anEngine *Engine, aTable *Table, rows ...Row) {
	for _, aRow := range rows {
		aResult, err := anEngine.Execute(ctx, Statement{Kind: Insert, RowToInsert: aRow}, aTable)
		require.NoError(t, err)
		require.Equal(t, ExecuteSuccess, aResult.Result)
	}
}

func selectAll(t *testing.T, ctx context.Context, anEngine *Engine, aTable *Table) []Row {
	aResult, err := anEngine.Execute(ctx, Statement{Kind: Select}, aTable)
	require.NoError(t, err)
	require.Equal(t, ExecuteSuccess, aResult.Result)

	rows, err := aResult.Rows.Collect(ctx)
	require.NoError(t, err)
	return rows
}

type MockPager struct {
	mock.Mock
}

func (m *MockPager) GetPage(ctx context.Context, pageIdx PageIndex) (*Page, error) {
	args := m.Called(ctx, pageIdx)
	aPage, _ := args.Get(0).(*Page)
	return aPage, args.Error(1)
}

func (m *MockPager) TotalPages() uint32 {
	args := m.Called()
	return args.Get(0).(uint32)
}

func (m *MockPager) MaxPages() uint32 {
	args := m.Called()
	return args.Get(0).(uint32)
}

func (m *MockPager) Close() error {
	args := m.Called()
	return args.Error(0)
}
