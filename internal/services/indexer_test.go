package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
)

type fakeQdrant struct {
	mu      sync.Mutex
	upserts []upsertRecord
}

type upsertRecord struct {
	analysisID string
	docType    string
	text       string
}

func (f *fakeQdrant) InitCollection() error { return nil }

func (f *fakeQdrant) UpsertAnalysisChunk(_ context.Context, analysisID, docType, text string, _ []float32) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.upserts = append(f.upserts, upsertRecord{analysisID: analysisID, docType: docType, text: text})
	return nil
}

func (f *fakeQdrant) SearchSimilar(_ context.Context, _ []float32, _ string, _ int) ([]SearchResult, error) {
	return nil, nil
}

func (f *fakeQdrant) DeleteAnalysis(_ context.Context, _ string) error { return nil }

func (f *fakeQdrant) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.upserts)
}

func TestIndexerIndexesResumeAndJobDescription(t *testing.T) {
	qdrant := &fakeQdrant{}
	ix := NewIndexer(&spyGemini{}, qdrant, 1, 500, 50)

	ix.Start(context.Background())

	analysisID := uuid.New()
	ix.Enqueue(IndexJob{
		AnalysisID:     analysisID,
		CacheKey:       "abc123",
		ResumeText:     "Go developer with three years of projects.",
		JobDescription: "Backend engineer role in Bangalore.",
	})

	deadline := time.Now().Add(2 * time.Second)
	for qdrant.count() < 2 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}

	ix.Stop()

	if qdrant.count() != 2 {
		t.Fatalf("upserts = %d, want 2 (job description and resume)", qdrant.count())
	}

	docTypes := map[string]bool{}
	for _, rec := range qdrant.upserts {
		if rec.analysisID != analysisID.String() {
			t.Errorf("analysis ID = %s, want %s", rec.analysisID, analysisID)
		}
		docTypes[rec.docType] = true
	}

	if !docTypes[docTypeResume] || !docTypes[docTypeJobDescription] {
		t.Errorf("doc types = %v, want both resume and job_description", docTypes)
	}
}

func TestIndexerSkipsEmptyResumeText(t *testing.T) {
	qdrant := &fakeQdrant{}
	ix := NewIndexer(&spyGemini{}, qdrant, 1, 500, 50)

	ix.Start(context.Background())

	ix.Enqueue(IndexJob{
		AnalysisID:     uuid.New(),
		CacheKey:       "def456",
		ResumeText:     "",
		JobDescription: "Data analyst role.",
	})

	deadline := time.Now().Add(2 * time.Second)
	for qdrant.count() < 1 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}

	ix.Stop()

	if qdrant.count() != 1 {
		t.Fatalf("upserts = %d, want 1 (job description only)", qdrant.count())
	}
	if qdrant.upserts[0].docType != docTypeJobDescription {
		t.Errorf("doc type = %s, want %s", qdrant.upserts[0].docType, docTypeJobDescription)
	}
}
