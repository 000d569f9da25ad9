package services

import (
	"airship-delivery/internal/console"
	"airship-delivery/internal/domain"
	"airship-delivery/internal/platform/logging"
	"airship-delivery/internal/platform/obs"
	"airship-delivery/internal/ports"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// errQuit travels up from the menu when the player chooses to leave.
var errQuit = errors.New("captain left the bridge")

// Session plays one game: scenes, cargo entry, the guessing menu and the ending.
// It owns the manifest for its whole lifetime.
type Session struct {
	ID      string
	Store   ports.DeliveryStore
	Scenes  ports.SceneProvider
	Ledger  ports.Ledger
	Console *console.Prompter

	log *zap.Logger
	seq int
	now func() time.Time
}

func NewSession(store ports.DeliveryStore, scenes ports.SceneProvider, ledger ports.Ledger, p *console.Prompter) *Session {
	id := uuid.NewString()
	return &Session{
		ID:      id,
		Store:   store,
		Scenes:  scenes,
		Ledger:  ledger,
		Console: p,
		log:     logging.New("game").With(zap.String("session_id", id)),
		now:     time.Now,
	}
}

// Run plays the session to its end. Quitting, or running out of input,
// yields OutcomeAborted with a nil error.
func (s *Session) Run(ctx context.Context) (Outcome, error) {
	ctx = obs.WithSession(ctx, s.ID)
	s.log.Info("session started")

	outcome, err := s.play(ctx)
	switch {
	case errors.Is(err, errQuit), errors.Is(err, io.EOF):
		s.log.Info("session aborted", zap.NamedError("reason", err))
		return OutcomeAborted, nil
	case err != nil:
		return OutcomeAborted, fmt.Errorf("run session: %w", err)
	}

	s.log.Info("session finished", zap.Stringer("outcome", outcome))
	return outcome, nil
}

func (s *Session) play(ctx context.Context) (Outcome, error) {
	if err := s.scene(domain.SceneOpening, true); err != nil {
		return OutcomeAborted, err
	}

	for i := 1; i <= domain.CustomerCount; i++ {
		if err := s.scene(domain.CustomerScene(i), false); err != nil {
			return OutcomeAborted, err
		}
		if err := s.recordCargo(ctx); err != nil {
			return OutcomeAborted, err
		}
		if err := s.Console.Pause(); err != nil {
			return OutcomeAborted, err
		}
	}

	if err := s.scene(domain.SceneGuessing, true); err != nil {
		return OutcomeAborted, err
	}

	dumped, err := s.menu(ctx)
	if err != nil {
		return OutcomeAborted, err
	}

	outcome, ending := OutcomeDefeat, domain.SceneDefeat
	if IsFraud(dumped, s.Scenes.FraudCustomer()) {
		outcome, ending = OutcomeVictory, domain.SceneVictory
	}
	s.log.Info("package dumped",
		zap.String("customer", dumped.Customer),
		zap.String("item", dumped.Item),
		zap.Stringer("outcome", outcome),
	)

	if err := s.scene(ending, false); err != nil {
		return OutcomeAborted, err
	}
	return outcome, nil
}

// IsFraud reports whether the dumped delivery belongs to the fraudulent sender.
// Names typed by the player are compared trimmed and case-insensitively.
func IsFraud(d domain.Delivery, fraudCustomer string) bool {
	return strings.EqualFold(strings.TrimSpace(d.Customer), strings.TrimSpace(fraudCustomer))
}

func (s *Session) scene(id domain.SceneID, pause bool) error {
	text, err := s.Scenes.Scene(id)
	if err != nil {
		return fmt.Errorf("show scene: %w", err)
	}

	s.Console.Clear()
	s.Console.Println(text)
	s.Console.Println("")

	if pause {
		return s.Console.Pause()
	}
	return nil
}

func (s *Session) recordCargo(ctx context.Context) error {
	p := s.Console
	p.Println("      ──────────────────────────────────────────────")
	p.Println("                CARGO MANIFEST ENTRY TERMINAL")
	p.Println("      ──────────────────────────────────────────────")
	p.Println("")
	p.Println("  Captain, input the following details carefully.")
	p.Println("  One wrong digit and insurance will have your head.")
	p.Println("")

	var d domain.Delivery
	var err error
	if d.Customer, err = p.Text("Customer / Sender Name"); err != nil {
		return err
	}
	if d.Item, err = p.Text("Item Description"); err != nil {
		return err
	}
	if d.Quantity, err = p.PositiveInt("Quantity (units)"); err != nil {
		return err
	}
	if d.Cost, err = p.NonNegativeFloat("Declared Value (credits)"); err != nil {
		return err
	}
	if err := d.Validate(); err != nil {
		return fmt.Errorf("record cargo: %w", err)
	}

	p.Println("")
	console.Receipt(p.Out(), d)

	s.Store.Add(d.Customer, d.Item, d.Quantity, d.Cost)
	s.journal(ctx, domain.LogOpAdd, d)
	return nil
}

// journal writes to the Captain's log. The log is a convenience, so a failed
// write is logged and play continues.
func (s *Session) journal(ctx context.Context, op domain.LogOp, d domain.Delivery) {
	s.seq++
	e := domain.LogEntry{SessionID: s.ID, Seq: s.seq, Op: op, Delivery: d, At: s.now()}
	if err := s.Ledger.Record(ctx, e); err != nil {
		s.log.Warn("captain's log write failed", zap.Int("seq", e.Seq), zap.Error(err))
	}
}
