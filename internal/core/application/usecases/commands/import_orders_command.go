package commands

import (
	"errors"
	"io"

	"github.com/mantoshmedhansh-dot/lma/internal/core/domain/model/kernel"
	"github.com/mantoshmedhansh-dot/lma/internal/pkg/errs"
)

var ErrImportOrdersCommandIsNotConstructed = errors.New(
	"ImportOrdersCommand must be created via NewImportOrdersCommand constructor",
)

// ImportOrdersCommand is a request to bulk-load orders from a CSV stream.
type ImportOrdersCommand struct {
	hubID     kernel.UUID
	fileName  string
	csv       io.Reader
	createdBy string

	constructed bool
}

func NewImportOrdersCommand(hubID kernel.UUID, fileName string, csv io.Reader, createdBy string) (ImportOrdersCommand, error) {
	if err := hubID.Validate(); err != nil {
		return ImportOrdersCommand{}, err
	}
	if fileName == "" {
		return ImportOrdersCommand{}, errs.NewValueIsRequiredError("file_name")
	}
	if csv == nil {
		return ImportOrdersCommand{}, errs.NewValueIsRequiredError("csv")
	}

	return ImportOrdersCommand{
		hubID:       hubID,
		fileName:    fileName,
		csv:         csv,
		createdBy:   createdBy,
		constructed: true,
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ImportOrdersCommand) Validate() error {
	if !c.constructed {
		return ErrImportOrdersCommandIsNotConstructed
	}
	return nil
}

func (c ImportOrdersCommand) HubID() kernel.UUID { return c.hubID }
func (c ImportOrdersCommand) FileName() string   { return c.fileName }
func (c ImportOrdersCommand) CSV() io.Reader     { return c.csv }
func (c ImportOrdersCommand) CreatedBy() string  { return c.createdBy }
