package ledger

import (
	"sort"

	"github.com/zdenekh/club-fines/internal/domain/cashbox"
	"github.com/zdenekh/club-fines/internal/domain/expense"
	"github.com/zdenekh/club-fines/internal/domain/fine"
	"github.com/zdenekh/club-fines/internal/domain/payment"
	"github.com/zdenekh/club-fines/internal/domain/player"
)

// Status labels a player's standing against their fines. It is recomputed
// from current totals on every read, never stored.
type Status string

const (
	StatusFullyPaid     Status = "fully_paid"
	StatusNothingPaid   Status = "nothing_paid"
	StatusPartiallyPaid Status = "partially_paid"
)

// Classify maps a player's totals onto a payment status. Total over-payment
// counts as fully paid; a player with no fines is trivially settled.
func Classify(totalOwed, paidSoFar int64) Status {
	switch {
	case totalOwed == 0:
		return StatusFullyPaid
	case paidSoFar >= totalOwed:
		return StatusFullyPaid
	case paidSoFar == 0:
		return StatusNothingPaid
	default:
		return StatusPartiallyPaid
	}
}

// PlayerAccount is one player enriched with their fines, payments and
// derived balance. Remaining is clamped to zero even when payments exceed
// fines.
type PlayerAccount struct {
	Player    player.Player
	Fines     []fine.Fine
	Payments  []payment.Payment
	TotalOwed int64
	PaidSoFar int64
	Remaining int64
	Status    Status
}

// Summary is the category-wide financial picture. TotalFines, TotalPaid and
// TotalRemaining are sums of the per-player values, so fines or payments
// referencing a deleted player never count anywhere. AvailableNow and
// AvailableIfAllPaid may be negative when the club spent more than it holds.
type Summary struct {
	TotalFines         int64
	TotalPaid          int64
	TotalRemaining     int64
	TotalExpenses      int64
	CashBoxAmount      int64
	AvailableNow       int64
	AvailableIfAllPaid int64
}

// Input is one category's rows, already scoped by the caller. CashBox and
// Expenses are optional; without them the summary carries fine/payment totals
// only.
type Input struct {
	Players  []player.Player
	Fines    []fine.Fine
	Payments []payment.Payment
	CashBox  *cashbox.CashBox
	Expenses []expense.Expense
}

// Reconcile computes one PlayerAccount per player plus the category summary.
// Pure function of its input: no I/O, no mutation, deterministic.
func Reconcile(in Input) ([]PlayerAccount, Summary) {
	finesByPlayer := make(map[string][]fine.Fine, len(in.Players))
	for _, f := range in.Fines {
		finesByPlayer[f.PlayerID] = append(finesByPlayer[f.PlayerID], f)
	}
	paymentsByPlayer := make(map[string][]payment.Payment, len(in.Players))
	for _, p := range in.Payments {
		paymentsByPlayer[p.PlayerID] = append(paymentsByPlayer[p.PlayerID], p)
	}

	accounts := make([]PlayerAccount, 0, len(in.Players))
	var summary Summary

	for _, pl := range in.Players {
		acc := PlayerAccount{
			Player:   pl,
			Fines:    finesByPlayer[pl.ID],
			Payments: paymentsByPlayer[pl.ID],
		}
		for _, f := range acc.Fines {
			acc.TotalOwed += f.Amount
		}
		for _, p := range acc.Payments {
			acc.PaidSoFar += p.Amount
		}
		acc.Remaining = acc.TotalOwed - acc.PaidSoFar
		if acc.Remaining < 0 {
			acc.Remaining = 0
		}
		acc.Status = Classify(acc.TotalOwed, acc.PaidSoFar)

		summary.TotalFines += acc.TotalOwed
		summary.TotalPaid += acc.PaidSoFar
		summary.TotalRemaining += acc.Remaining
		accounts = append(accounts, acc)
	}

	for _, e := range in.Expenses {
		summary.TotalExpenses += e.Amount
	}
	if in.CashBox != nil {
		summary.CashBoxAmount = in.CashBox.ManualAmount
	}
	summary.AvailableNow = summary.CashBoxAmount + summary.TotalPaid - summary.TotalExpenses
	summary.AvailableIfAllPaid = summary.CashBoxAmount + summary.TotalFines - summary.TotalExpenses

	return accounts, summary
}

// SortByRemainingDesc orders accounts highest debtor first, with player name
// as a stable tiebreaker. Presentation helper; Reconcile itself does not
// order its output.
func SortByRemainingDesc(accounts []PlayerAccount) {
	sort.SliceStable(accounts, func(i, j int) bool {
		if accounts[i].Remaining != accounts[j].Remaining {
			return accounts[i].Remaining > accounts[j].Remaining
		}
		return accounts[i].Player.Name < accounts[j].Player.Name
	})
}
