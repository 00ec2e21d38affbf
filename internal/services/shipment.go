package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/yungbote/brewery-backend/internal/data/aggregates"
	"github.com/yungbote/brewery-backend/internal/data/repos"
	types "github.com/yungbote/brewery-backend/internal/domain"
	domainagg "github.com/yungbote/brewery-backend/internal/domain/aggregates"
	"github.com/yungbote/brewery-backend/internal/platform/dbctx"
	"github.com/yungbote/brewery-backend/internal/platform/logger"
	"github.com/yungbote/brewery-backend/internal/platform/paging"
)

// ShipmentService manages shipments under a parent order. A shipment that
// exists under another order is reported as not found.
type ShipmentService interface {
	Create(ctx context.Context, orderID uuid.UUID, req ShipmentRequest) (*ShipmentResponse, error)
	GetByID(ctx context.Context, orderID, shipmentID uuid.UUID) (*ShipmentResponse, error)
	List(ctx context.Context, orderID uuid.UUID, page paging.Request) (*paging.Page[ShipmentResponse], error)
	Update(ctx context.Context, orderID, shipmentID uuid.UUID, req ShipmentRequest) (*ShipmentResponse, error)
	Delete(ctx context.Context, orderID, shipmentID uuid.UUID) error
}

type shipmentService struct {
	db     *gorm.DB
	log    *logger.Logger
	base   aggregates.BaseDeps
	orders repos.OrderRepo
	repo   repos.ShipmentRepo
}

func NewShipmentService(db *gorm.DB, log *logger.Logger, base aggregates.BaseDeps, orderRepo repos.OrderRepo, repo repos.ShipmentRepo) ShipmentService {
	serviceLog := log.With("service", "ShipmentService")
	if base.DB == nil {
		base.DB = db
	}
	if base.Log == nil {
		base.Log = serviceLog
	}
	return &shipmentService{db: db, log: serviceLog, base: base, orders: orderRepo, repo: repo}
}

func parseShipmentDate(raw string) datatypes.Date {
	t, _ := time.Parse(dateLayout, raw)
	return datatypes.Date(t)
}

func (s *shipmentService) requireOrder(dbc dbctx.Context, op string, orderID uuid.UUID) error {
	ok, err := s.orders.Exists(dbc, orderID)
	if err != nil {
		return err
	}
	if !ok {
		return domainagg.NotFound(op, "Order", orderID)
	}
	return nil
}

func (s *shipmentService) Create(ctx context.Context, orderID uuid.UUID, req ShipmentRequest) (*ShipmentResponse, error) {
	const op = "Orders.Shipment.Create"
	if err := validateRequest(op, req, nil); err != nil {
		return nil, err
	}
	sh := &types.Shipment{
		OrderID:        orderID,
		ShipmentDate:   parseShipmentDate(req.ShipmentDate),
		Carrier:        blankToNil(req.Carrier),
		TrackingNumber: blankToNil(req.TrackingNumber),
	}
	err := s.base.Write(ctx, op, func(dbc dbctx.Context) error {
		if err := s.requireOrder(dbc, op, orderID); err != nil {
			return err
		}
		return s.repo.Create(dbc, sh)
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("shipment created", "order_id", orderID, "shipment_id", sh.ID)
	out := ShipmentResponseFrom(sh)
	return &out, nil
}

func (s *shipmentService) GetByID(ctx context.Context, orderID, shipmentID uuid.UUID) (*ShipmentResponse, error) {
	const op = "Orders.Shipment.Get"
	sh, err := s.repo.GetByOrderAndID(dbctx.New(ctx), orderID, shipmentID)
	if err != nil {
		return nil, aggregates.MapError(op, err)
	}
	if sh == nil {
		return nil, domainagg.NotFound(op, "Shipment", shipmentID)
	}
	out := ShipmentResponseFrom(sh)
	return &out, nil
}

func (s *shipmentService) List(ctx context.Context, orderID uuid.UUID, page paging.Request) (*paging.Page[ShipmentResponse], error) {
	const op = "Orders.Shipment.List"
	page, err := pageRequest(op, page)
	if err != nil {
		return nil, err
	}
	var res paging.Page[ShipmentResponse]
	err = s.base.Read(ctx, op, func(dbc dbctx.Context) error {
		if err := s.requireOrder(dbc, op, orderID); err != nil {
			return err
		}
		rows, total, err := s.repo.ListByOrder(dbc, orderID, page)
		if err != nil {
			return err
		}
		out := make([]ShipmentResponse, 0, len(rows))
		for _, sh := range rows {
			out = append(out, ShipmentResponseFrom(sh))
		}
		res = paging.NewPage(out, page, total)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *shipmentService) Update(ctx context.Context, orderID, shipmentID uuid.UUID, req ShipmentRequest) (*ShipmentResponse, error) {
	const op = "Orders.Shipment.Update"
	if err := validateRequest(op, req, nil); err != nil {
		return nil, err
	}
	var updated *types.Shipment
	err := s.base.Write(ctx, op, func(dbc dbctx.Context) error {
		sh, err := s.repo.GetByOrderAndID(dbc, orderID, shipmentID)
		if err != nil {
			return err
		}
		if sh == nil {
			return domainagg.NotFound(op, "Shipment", shipmentID)
		}
		if req.Version != nil {
			if err := aggregates.RequireVersionMatch(sh.Version, *req.Version); err != nil {
				return err
			}
		}
		ok, err := s.base.Guard().UpdateByVersion(dbc, sh.TableName(), sh.ID, sh.Version, map[string]any{
			"shipment_date":   parseShipmentDate(req.ShipmentDate),
			"carrier":         blankToNil(req.Carrier),
			"tracking_number": blankToNil(req.TrackingNumber),
		})
		if err != nil {
			return err
		}
		if err := aggregates.RequireCASSuccess(ok, "shipment was modified concurrently"); err != nil {
			return err
		}
		updated, err = s.repo.GetByOrderAndID(dbc, orderID, shipmentID)
		return err
	})
	if err != nil {
		return nil, err
	}
	out := ShipmentResponseFrom(updated)
	return &out, nil
}

func (s *shipmentService) Delete(ctx context.Context, orderID, shipmentID uuid.UUID) error {
	const op = "Orders.Shipment.Delete"
	return s.base.Write(ctx, op, func(dbc dbctx.Context) error {
		ok, err := s.repo.DeleteByOrderAndID(dbc, orderID, shipmentID)
		if err != nil {
			return err
		}
		if !ok {
			return domainagg.NotFound(op, "Shipment", shipmentID)
		}
		return nil
	})
}
