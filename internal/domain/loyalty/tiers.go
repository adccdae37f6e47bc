package loyalty

type Tier string

const (
	TierSilver   Tier = "Silver"
	TierGold     Tier = "Gold"
	TierPlatinum Tier = "Platinum"
)

func (t Tier) String() string {
	return string(t)
}

type TierRule struct {
	Tier      Tier
	MinPoints int
	Rewards   []string
}

// DefaultRules must stay sorted by MinPoints ascending and start at zero.
var DefaultRules = []TierRule{
	{Tier: TierSilver, MinPoints: 0, Rewards: []string{"Discount Voucher", "Free Breakfast"}},
	{Tier: TierGold, MinPoints: 1000, Rewards: []string{"Free Night", "Room Upgrade"}},
	{Tier: TierPlatinum, MinPoints: 3000, Rewards: []string{"Executive Lounge Access"}},
}

// TierFor returns the highest tier whose threshold balance meets, plus the rewards unlocked up to it.
func TierFor(rules []TierRule, balance int) (Tier, []string) {
	var (
		tier    Tier
		rewards []string
	)
	for _, r := range rules {
		if balance < r.MinPoints {
			break
		}
		tier = r.Tier
		rewards = append(rewards, r.Rewards...)
	}
	return tier, rewards
}
