package mocks_test

import (
	"github.com/mouse-blink/gorector/internal/domain"
	"github.com/mouse-blink/gorector/internal/domain/mocks"
)

var _ domain.Workflow = (*mocks.MockWorkflow)(nil)
