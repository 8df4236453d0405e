package services

import (
	"strings"
	"testing"
)

func TestChunkTextShortInputSingleChunk(t *testing.T) {
	chunker := NewTextChunker()

	chunks := chunker.ChunkText("Skills: Go, Postgres.\n\nProjects: a web crawler.", 1000, 100)

	if len(chunks) != 1 {
		t.Fatalf("chunks = %d, want 1", len(chunks))
	}
	if !strings.Contains(chunks[0], "web crawler") {
		t.Errorf("chunk missing content: %q", chunks[0])
	}
}

func TestChunkTextRespectsMaxSize(t *testing.T) {
	chunker := NewTextChunker()

	var paragraphs []string
	for i := 0; i < 20; i++ {
		paragraphs = append(paragraphs, strings.Repeat("experience ", 10))
	}
	text := strings.Join(paragraphs, "\n\n")

	chunks := chunker.ChunkText(text, 300, 50)

	if len(chunks) < 2 {
		t.Fatalf("chunks = %d, want several for long input", len(chunks))
	}
	for i, chunk := range chunks {
		// Overlap text can push a chunk slightly past the limit.
		if len(chunk) > 300+50+2 {
			t.Errorf("chunk %d is %d chars, exceeds limit", i, len(chunk))
		}
	}
}

func TestChunkTextEmptyInput(t *testing.T) {
	chunker := NewTextChunker()

	if chunks := chunker.ChunkText("", 1000, 100); len(chunks) != 0 {
		t.Errorf("chunks = %d for empty input, want 0", len(chunks))
	}
	if chunks := chunker.ChunkText("\n\n  \n\n", 1000, 100); len(chunks) != 0 {
		t.Errorf("chunks = %d for blank input, want 0", len(chunks))
	}
}
