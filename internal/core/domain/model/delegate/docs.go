// Package delegate provides the Delegate aggregate: a field worker registered
// for exactly one (city, service) territory who carries orders from assignment
// to completion and accrues payout bookkeeping along the way.
package delegate
