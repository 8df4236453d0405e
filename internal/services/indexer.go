package services

import (
	"context"
	"log"
	"sync"

	"github.com/google/uuid"
)

const (
	docTypeResume         = "resume"
	docTypeJobDescription = "job_description"
)

// IndexJob carries the text of one completed analysis to the vector store.
type IndexJob struct {
	AnalysisID     uuid.UUID
	CacheKey       string
	ResumeText     string
	JobDescription string
}

// Indexer embeds and upserts analysis text in the background so the request
// path stays synchronous. Indexing is best effort: a failed job is logged and
// dropped, never retried into the serving path.
type Indexer interface {
	Start(ctx context.Context)
	Stop()
	Enqueue(job IndexJob)
}

type indexer struct {
	geminiService GeminiService
	qdrantService QdrantService
	chunker       TextChunker
	jobQueue      chan IndexJob
	concurrency   int
	chunkSize     int
	chunkOverlap  int
	wg            sync.WaitGroup
	stopChan      chan struct{}
}

func NewIndexer(
	geminiService GeminiService,
	qdrantService QdrantService,
	concurrency int,
	chunkSize int,
	chunkOverlap int,
) Indexer {
	if concurrency <= 0 {
		concurrency = 1
	}
	return &indexer{
		geminiService: geminiService,
		qdrantService: qdrantService,
		chunker:       NewTextChunker(),
		jobQueue:      make(chan IndexJob, 100),
		concurrency:   concurrency,
		chunkSize:     chunkSize,
		chunkOverlap:  chunkOverlap,
		stopChan:      make(chan struct{}),
	}
}

// Start implements Indexer.
func (ix *indexer) Start(ctx context.Context) {
	log.Printf("🚀 Starting indexer with %d workers\n", ix.concurrency)

	for i := 0; i < ix.concurrency; i++ {
		ix.wg.Add(1)
		go ix.processJobs(ctx, i+1)
	}
}

// Stop implements Indexer.
func (ix *indexer) Stop() {
	log.Println("🛑 Stopping indexer...")
	close(ix.stopChan)
	ix.wg.Wait()
	log.Println("✅ Indexer stopped")
}

// Enqueue implements Indexer.
func (ix *indexer) Enqueue(job IndexJob) {
	select {
	case ix.jobQueue <- job:
	case <-ix.stopChan:
		log.Printf("⚠️  Indexer stopped, dropping job for analysis %s\n", job.AnalysisID)
	default:
		// Queue full. Indexing is best effort, the request must not block.
		log.Printf("⚠️  Index queue full, dropping job for analysis %s\n", job.AnalysisID)
	}
}

func (ix *indexer) processJobs(ctx context.Context, workerID int) {
	defer ix.wg.Done()

	for {
		select {
		case <-ix.stopChan:
			log.Printf("👷 Indexer worker #%d stopped\n", workerID)
			return
		case job := <-ix.jobQueue:
			if err := ix.indexAnalysis(ctx, job); err != nil {
				log.Printf("⚠️  Indexer worker #%d failed on analysis %s: %v\n", workerID, job.AnalysisID, err)
			}
		}
	}
}

func (ix *indexer) indexAnalysis(ctx context.Context, job IndexJob) error {
	if err := ix.indexText(ctx, job.AnalysisID.String(), docTypeJobDescription, job.JobDescription); err != nil {
		return err
	}

	if job.ResumeText == "" {
		return nil
	}

	return ix.indexText(ctx, job.AnalysisID.String(), docTypeResume, job.ResumeText)
}

func (ix *indexer) indexText(ctx context.Context, analysisID, docType, text string) error {
	chunks := ix.chunker.ChunkText(text, ix.chunkSize, ix.chunkOverlap)

	for _, chunk := range chunks {
		embedding, err := ix.geminiService.GenerateEmbedding(ctx, chunk)
		if err != nil {
			return err
		}

		if err := ix.qdrantService.UpsertAnalysisChunk(ctx, analysisID, docType, chunk, embedding); err != nil {
			return err
		}
	}

	return nil
}
