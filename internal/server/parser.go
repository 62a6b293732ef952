package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	schedulespb "github.com/danuarta/schedules-tracker/gen/proto/schedules/v1"
	"github.com/danuarta/schedules-tracker/internal/common"
	"github.com/danuarta/schedules-tracker/internal/parser"
	"github.com/danuarta/schedules-tracker/internal/utils"
)

type ParserService struct {
	schedulespb.UnimplementedParserServiceServer
	engine *parser.Engine
	logger *slog.Logger
}

func NewParserService(engine *parser.Engine, logger *slog.Logger) *ParserService {
	return &ParserService{
		engine: engine,
		logger: logger,
	}
}

func (s *ParserService) ParseText(ctx context.Context, req *schedulespb.ParseTextRequest) (*schedulespb.ParseTextResponse, error) {
	validator := common.NewValidator()
	validator.Field("text", req.GetText(), common.Required)
	validator.Field("carrier_hint", req.GetCarrierHint(), common.CarrierID)
	if err := common.ValidateAndReturnError(validator); err != nil {
		s.logger.Error("parse request rejected", "error", err)
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	result, err := s.engine.Parse(ctx, parser.Request{
		Text:         req.GetText(),
		CarrierHint:  req.GetCarrierHint(),
		FilenameHint: req.GetFilenameHint(),
	})
	if err != nil {
		switch {
		case errors.Is(err, common.ErrAmbiguousCarrier):
			return nil, common.FailedPreconditionError(fmt.Sprintf("carrier detection ambiguous: %v", err))
		case errors.Is(err, common.ErrInvalidInput):
			return nil, status.Error(codes.InvalidArgument, err.Error())
		default:
			s.logger.Error("parse failed", "error", err)
			return nil, common.InternalErrorf("parse: %v", err)
		}
	}

	s.logger.Info("text parsed", "carrier", result.Carrier, "options", len(result.Options))
	return utils.ToPBParseResult(result), nil
}
