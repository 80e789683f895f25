package responses

type Health struct {
	Status       string `json:"status"`
	Version      string `json:"version"`
	LedgerDriver string `json:"ledger_driver"`
	LockerDriver string `json:"locker_driver"`
}
