package main

import (
	goerrors "github.com/agilira/go-errors"
	"github.com/agilira/orpheus/pkg/orpheus"
)

// Error codes
const (
	ErrCodeInvalidConfig        goerrors.ErrorCode = "INVALID_CONFIG"
	ErrCodeConfigNotFound       goerrors.ErrorCode = "CONFIG_NOT_FOUND"
	ErrCodeDuplicateTask        goerrors.ErrorCode = "DUPLICATE_TASK"
	ErrCodeTaskNotFound         goerrors.ErrorCode = "TASK_NOT_FOUND"
	ErrCodeDependencyCycle      goerrors.ErrorCode = "DEPENDENCY_CYCLE"
	ErrCodeDuplicatePublication goerrors.ErrorCode = "DUPLICATE_PUBLICATION"
	ErrCodePublicationNotFound  goerrors.ErrorCode = "PUBLICATION_NOT_FOUND"
	ErrCodeInvalidCoordinate    goerrors.ErrorCode = "INVALID_COORDINATE"
)

// cliError turns a coded error into the orpheus error the command reports.
func cliError(command string, err error) error {
	if err == nil {
		return nil
	}
	switch {
	case goerrors.HasCode(err, ErrCodeTaskNotFound),
		goerrors.HasCode(err, ErrCodePublicationNotFound),
		goerrors.HasCode(err, ErrCodeConfigNotFound):
		return orpheus.NotFoundError(command, err.Error())
	case goerrors.HasCode(err, ErrCodeInvalidConfig),
		goerrors.HasCode(err, ErrCodeInvalidCoordinate),
		goerrors.HasCode(err, ErrCodeDuplicateTask),
		goerrors.HasCode(err, ErrCodeDuplicatePublication),
		goerrors.HasCode(err, ErrCodeDependencyCycle):
		return orpheus.ValidationError(command, err.Error())
	default:
		return orpheus.ExecutionError(command, err.Error())
	}
}
