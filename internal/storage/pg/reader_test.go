package pg

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/pagekit-go/pagekit/internal/domain"
	pkgtesting "github.com/pagekit-go/pagekit/pkg/testing"
	"github.com/testcontainers/testcontainers-go"
)

var (
	testCtx    context.Context
	testPool   *ConnectionPool
	testReader *Reader
	testStorer *Storer
)

func TestMain(m *testing.M) {
	testCtx = context.Background()

	pg, err := pkgtesting.NewPGContainer(testCtx, pkgtesting.PGConfig{
		Database: "pagekit_test_db",
		Username: "test",
		Password: "test",
	})
	if err != nil {
		panic(err)
	}
	defer testcontainers.TerminateContainer(pg.Container)

	testPool, err = NewConnectionPool(testCtx, PoolConfig{ConnStr: pg.ConnString})
	if err != nil {
		panic(err)
	}
	defer testPool.Close()

	testReader = NewReader(testPool)
	testStorer = NewStorer(testPool)

	os.Exit(m.Run())
}

func truncateTable(t *testing.T) {
	t.Helper()
	if _, err := testPool.GetConn().Exec(testCtx, "TRUNCATE TABLE articles CASCADE"); err != nil {
		t.Fatalf("failed to truncate table: %v", err)
	}
}

func seedArticles(t *testing.T, n int) {
	t.Helper()

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	articles := make([]domain.Article, 0, n)
	for i := 0; i < n; i++ {
		articles = append(articles, domain.Article{
			Title:     fmt.Sprintf("Article %d", i),
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		})
	}
	if err := testStorer.SaveBulk(testCtx, articles); err != nil {
		t.Fatalf("failed to seed articles: %v", err)
	}
}

func TestReader_Count(t *testing.T) {
	truncateTable(t)
	defer truncateTable(t)

	count, err := testReader.Count(testCtx)
	if err != nil {
		t.Fatalf("failed to count: %v", err)
	}
	if count != 0 {
		t.Errorf("expected 0 articles, got %d", count)
	}

	seedArticles(t, 5)

	count, err = testReader.Count(testCtx)
	if err != nil {
		t.Fatalf("failed to count: %v", err)
	}
	if count != 5 {
		t.Errorf("expected 5 articles, got %d", count)
	}
}

func TestReader_Slice_NewestFirst(t *testing.T) {
	truncateTable(t)
	defer truncateTable(t)

	seedArticles(t, 3)

	articles, err := testReader.Slice(testCtx, 0, 10)
	if err != nil {
		t.Fatalf("failed to slice: %v", err)
	}
	if len(articles) != 3 {
		t.Fatalf("expected 3 articles, got %d", len(articles))
	}
	if articles[0].Title != "Article 2" {
		t.Errorf("expected newest article first, got %q", articles[0].Title)
	}
	if articles[2].Title != "Article 0" {
		t.Errorf("expected oldest article last, got %q", articles[2].Title)
	}
}

func TestReader_Slice_Windows(t *testing.T) {
	truncateTable(t)
	defer truncateTable(t)

	seedArticles(t, 7)

	window, err := testReader.Slice(testCtx, 5, 5)
	if err != nil {
		t.Fatalf("failed to slice: %v", err)
	}
	if len(window) != 2 {
		t.Errorf("expected remainder of 2 articles, got %d", len(window))
	}

	empty, err := testReader.Slice(testCtx, 50, 5)
	if err != nil {
		t.Fatalf("failed to slice: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("expected empty window past the end, got %d", len(empty))
	}
}

func TestStorer_Save_Upserts(t *testing.T) {
	truncateTable(t)
	defer truncateTable(t)

	id, err := testStorer.Save(testCtx, domain.Article{Title: "v1"})
	if err != nil {
		t.Fatalf("failed to save: %v", err)
	}

	if _, err := testStorer.Save(testCtx, domain.Article{ID: id, Title: "v2", CreatedAt: time.Now().UTC()}); err != nil {
		t.Fatalf("failed to re-save: %v", err)
	}

	count, err := testReader.Count(testCtx)
	if err != nil {
		t.Fatalf("failed to count: %v", err)
	}
	if count != 1 {
		t.Errorf("expected upsert to keep a single row, got %d", count)
	}

	articles, err := testReader.Slice(testCtx, 0, 1)
	if err != nil {
		t.Fatalf("failed to slice: %v", err)
	}
	if articles[0].Title != "v2" {
		t.Errorf("expected updated title, got %q", articles[0].Title)
	}
}
