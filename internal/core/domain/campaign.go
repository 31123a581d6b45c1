package domain

// Campaign is the single crowdfunding record held by a ledger instance.
// Amounts are stored in the asset's smallest unit (stroops for XLM).
type Campaign struct {
	Owner        Address
	Token        Address
	TargetAmount int64
	Deadline     uint32 // ledger sequence
	TotalRaised  int64
	Deposits     map[Address]int64
	IsFinalized  bool
}

// Status derives the read model at ledger sequence now. A zero Campaign,
// read before initialization, yields a zero status apart from the derived
// flags.
func (c Campaign) Status(now uint32) CampaignStatus {
	return NewCampaignStatus(c.TotalRaised, c.TargetAmount, c.Deadline, c.IsFinalized, now)
}

// CampaignStatus is the read model returned by a status query. TargetReached
// and DeadlinePassed are derived on every read and never stored.
type CampaignStatus struct {
	TotalRaised    int64  `json:"total_raised"`
	TargetAmount   int64  `json:"target_amount"`
	Deadline       uint32 `json:"deadline"`
	TargetReached  bool   `json:"target_reached"`
	DeadlinePassed bool   `json:"deadline_passed"`
	IsFinalized    bool   `json:"is_finalized"`
}

// NewCampaignStatus derives a status from raw fields and the current ledger
// sequence.
func NewCampaignStatus(totalRaised, targetAmount int64, deadline uint32, finalized bool, now uint32) CampaignStatus {
	return CampaignStatus{
		TotalRaised:    totalRaised,
		TargetAmount:   targetAmount,
		Deadline:       deadline,
		TargetReached:  totalRaised >= targetAmount,
		DeadlinePassed: now >= deadline,
		IsFinalized:    finalized,
	}
}

// WithdrawAvailable reports whether the owner may collect the raised funds.
func (s CampaignStatus) WithdrawAvailable() bool {
	return s.DeadlinePassed && s.TargetReached && !s.IsFinalized
}

// RefundAvailable reports whether contributors may reclaim their deposits.
func (s CampaignStatus) RefundAvailable() bool {
	return s.DeadlinePassed && !s.TargetReached && !s.IsFinalized
}

// DataKey names one field of the campaign record in instance storage.
type DataKey string

const (
	KeyOwner        DataKey = "Owner"
	KeyTokenAddress DataKey = "TokenAddress"
	KeyTargetAmount DataKey = "TargetAmount"
	KeyDeadline     DataKey = "Deadline"
	KeyTotalRaised  DataKey = "TotalRaised"
	KeyDeposits     DataKey = "Deposits"
	KeyIsFinalized  DataKey = "IsFinalized"
)

// Lifetime extension applied to instance storage after every mutation.
const (
	TTLThreshold uint32 = 100
	TTLExtendTo  uint32 = 100_000
)
