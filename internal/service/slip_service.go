package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"

	"github.com/mumcuarda/debit/internal/config"
	"github.com/mumcuarda/debit/internal/docio"
	"github.com/mumcuarda/debit/internal/domain"
	"github.com/mumcuarda/debit/internal/port"
	"github.com/mumcuarda/debit/internal/render"
	"github.com/mumcuarda/debit/internal/slip"
)

// ProcessInput is the DTO for slip processing requests.
type ProcessInput struct {
	FileName         string
	File             io.Reader
	Size             int64
	ReferenceASuffix string
	ReferenceBSuffix string
}

// ExtractInput is the DTO for extraction-only requests.
type ExtractInput struct {
	FileName string
	File     io.Reader
	Size     int64
}

// ProcessResult holds the generated archive and its download name.
type ProcessResult struct {
	Archive  []byte
	FileName string
	SlipNo   string
}

// SlipService defines the slip processing contract.
type SlipService interface {
	Process(ctx context.Context, input ProcessInput) (*ProcessResult, error)
	Extract(ctx context.Context, input ExtractInput) (*domain.ParsedSlip, error)
}

type slipService struct {
	reader    port.DocumentReader
	renderer  port.TemplateRenderer
	parser    *slip.Parser
	assembler *render.Assembler
	templates *config.TemplatesConfig
	maxBytes  int64
}

// NewSlipService creates a new SlipService implementation.
func NewSlipService(
	reader port.DocumentReader,
	renderer port.TemplateRenderer,
	parser *slip.Parser,
	assembler *render.Assembler,
	cfg *config.Config,
) SlipService {
	return &slipService{
		reader:    reader,
		renderer:  renderer,
		parser:    parser,
		assembler: assembler,
		templates: &cfg.Templates,
		maxBytes:  cfg.Upload.MaxFileSizeMB * 1024 * 1024,
	}
}

func (s *slipService) Process(ctx context.Context, input ProcessInput) (*ProcessResult, error) {
	parsed, err := s.parse(input.FileName, input.File, input.Size)
	if err != nil {
		return nil, err
	}

	ctxA, ctxB := s.assembler.BuildContexts(parsed, input.ReferenceASuffix, input.ReferenceBSuffix)

	docA, err := s.renderer.Render(s.templates.PathA, ctxA)
	if err != nil {
		return nil, fmt.Errorf("rendering template A: %w", err)
	}
	docB, err := s.renderer.Render(s.templates.PathB, ctxB)
	if err != nil {
		return nil, fmt.Errorf("rendering template B: %w", err)
	}

	archive, err := docio.BuildArchive([]docio.ArchiveEntry{
		{Name: ctxA["reference_a"] + ".docx", Data: docA},
		{Name: ctxB["reference_b"] + ".docx", Data: docB},
	})
	if err != nil {
		return nil, fmt.Errorf("packaging debit notes: %w", err)
	}

	log.Printf("slipService.Process: generated %s and %s for slip %s",
		ctxA["reference_a"], ctxB["reference_b"], parsed.SlipNo)

	return &ProcessResult{
		Archive:  archive,
		FileName: "debit_notes_" + parsed.SlipNo + ".zip",
		SlipNo:   parsed.SlipNo,
	}, nil
}

func (s *slipService) Extract(ctx context.Context, input ExtractInput) (*domain.ParsedSlip, error) {
	return s.parse(input.FileName, input.File, input.Size)
}

func (s *slipService) parse(fileName string, file io.Reader, size int64) (*domain.ParsedSlip, error) {
	if !strings.EqualFold(filepath.Ext(fileName), ".docx") {
		return nil, domain.ErrUnsupportedFileType
	}
	if s.maxBytes > 0 && size > s.maxBytes {
		return nil, domain.ErrFileTooLarge
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("reading upload: %w", err)
	}

	doc, err := s.reader.Read(data)
	if err != nil {
		return nil, err
	}
	return s.parser.Parse(doc)
}
