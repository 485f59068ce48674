package tools

import (
	"context"
	"errors"

	"toolsPlaza/domain"

	"github.com/go-playground/validator/v10"
)

// ToolsRepository contract interface
type ToolsRepository interface {
	Insert(ctx context.Context, tool domain.Tool) (string, error)
	FindAll(ctx context.Context) ([]domain.Tool, error)
	FindByID(ctx context.Context, id string) (*domain.Tool, error)
}

type toolsService struct {
	toolsRepo ToolsRepository
	validate  *validator.Validate
}

func NewToolsService(toolsRepo ToolsRepository, validate *validator.Validate) *toolsService {
	return &toolsService{
		toolsRepo: toolsRepo,
		validate:  validate,
	}
}

func (s *toolsService) CreateTool(ctx context.Context, tool domain.Tool) (string, error) {
	if err := s.validate.Var(tool.Name, "required"); err != nil {
		return "", errors.New("tool name is required")
	}
	if err := s.validate.Var(tool.Price, "gt=0"); err != nil {
		return "", errors.New("tool price must be positive")
	}

	return s.toolsRepo.Insert(ctx, tool)
}

// GetAllTools lists tools newest-first.
func (s *toolsService) GetAllTools(ctx context.Context) ([]domain.Tool, error) {
	return s.toolsRepo.FindAll(ctx)
}

func (s *toolsService) GetToolByID(ctx context.Context, id string) (*domain.Tool, error) {
	return s.toolsRepo.FindByID(ctx, id)
}
