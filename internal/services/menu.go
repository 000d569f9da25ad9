package services

import (
	"airship-delivery/internal/console"
	"airship-delivery/internal/domain"
	"context"

	"go.uber.org/zap"
)

const (
	optList   = "1"
	optFind   = "2"
	optModify = "3"
	optDump   = "4"
	optLog    = "5"
	optQuit   = "q"
	optQuitNo = "-1"
)

func (s *Session) printMenu() {
	p := s.Console
	p.Println("")
	p.Println("      ──────────────────────────────────────────────")
	p.Println("                    MANIFEST CONSOLE")
	p.Println("      ──────────────────────────────────────────────")
	p.Println("  1) List all deliveries")
	p.Println("  2) Find a delivery")
	p.Println("  3) Modify a delivery")
	p.Println("  4) Dump a package overboard")
	p.Println("  5) Read the Captain's log")
	p.Println("  q) Abandon ship (or -1)")
	p.Println("")
}

// menu loops until a package is dumped. Quitting returns errQuit.
func (s *Session) menu(ctx context.Context) (domain.Delivery, error) {
	for {
		s.printMenu()
		choice, err := s.Console.Choice("Select an option",
			optList, optFind, optModify, optDump, optLog, optQuit, optQuitNo)
		if err != nil {
			return domain.Delivery{}, err
		}
		s.log.Debug("menu choice", zap.String("choice", choice))

		switch choice {
		case optList:
			console.Manifest(s.Console.Out(), s.Store.All())

		case optFind:
			if err := s.find(); err != nil {
				return domain.Delivery{}, err
			}

		case optModify:
			if err := s.modify(ctx); err != nil {
				return domain.Delivery{}, err
			}

		case optDump:
			d, dumped, err := s.dump(ctx)
			if err != nil {
				return domain.Delivery{}, err
			}
			if dumped {
				return d, nil
			}

		case optLog:
			entries, err := s.Ledger.List(ctx, s.ID)
			if err != nil {
				s.log.Warn("captain's log read failed", zap.Error(err))
				s.Console.Println("  The Captain's log is water-damaged. Try again later.")
				continue
			}
			console.Log(s.Console.Out(), entries)

		case optQuit, optQuitNo:
			return domain.Delivery{}, errQuit
		}
	}
}

func (s *Session) askKey() (domain.Key, error) {
	var k domain.Key
	var err error
	if k.Customer, err = s.Console.Text("Customer / Sender Name"); err != nil {
		return k, err
	}
	if k.Item, err = s.Console.Text("Item Description"); err != nil {
		return k, err
	}
	return k, nil
}

func (s *Session) notFound(k domain.Key) {
	s.Console.Printf("  No delivery on the manifest for %s.\n", k)
}

func (s *Session) find() error {
	k, err := s.askKey()
	if err != nil {
		return err
	}

	e, ok := s.Store.Locate(k.Customer, k.Item)
	if !ok {
		s.notFound(k)
		return nil
	}
	console.Card(s.Console.Out(), e)
	return nil
}

func (s *Session) modify(ctx context.Context) error {
	k, err := s.askKey()
	if err != nil {
		return err
	}

	e, ok := s.Store.Locate(k.Customer, k.Item)
	if !ok {
		s.notFound(k)
		return nil
	}
	console.Card(s.Console.Out(), e)

	qty, err := s.Console.PositiveInt("New Quantity (units)")
	if err != nil {
		return err
	}
	cost, err := s.Console.NonNegativeFloat("New Declared Value (credits)")
	if err != nil {
		return err
	}

	if !s.Store.Modify(k.Customer, k.Item, qty, cost) {
		s.notFound(k)
		return nil
	}

	updated, _ := s.Store.Find(k.Customer, k.Item)
	s.journal(ctx, domain.LogOpModify, updated)
	s.Console.Println("  Manifest updated.")
	return nil
}

// dump shows the chosen record, asks for confirmation and removes it.
// The second result is false when nothing left the ship.
func (s *Session) dump(ctx context.Context) (domain.Delivery, bool, error) {
	k, err := s.askKey()
	if err != nil {
		return domain.Delivery{}, false, err
	}

	e, ok := s.Store.Locate(k.Customer, k.Item)
	if !ok {
		s.notFound(k)
		return domain.Delivery{}, false, nil
	}
	console.Card(s.Console.Out(), e)

	yes, err := s.Console.Confirm("Throw this package overboard?")
	if err != nil {
		return domain.Delivery{}, false, err
	}
	if !yes {
		s.Console.Println("  The package stays aboard.")
		return domain.Delivery{}, false, nil
	}

	if !s.Store.Remove(k.Customer, k.Item) {
		s.notFound(k)
		return domain.Delivery{}, false, nil
	}
	s.journal(ctx, domain.LogOpRemove, e.Delivery)
	return e.Delivery, true, nil
}
