package mocks_test

import (
	"github.com/mouse-blink/gorector/internal/controller"
	"github.com/mouse-blink/gorector/internal/controller/mocks"
)

var _ controller.UI = (*mocks.MockUI)(nil)
