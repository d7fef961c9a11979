package models

import "fmt"

// ItemName is the semantic name of an expedition reward item
type ItemName string

const (
	NoItem       ItemName = ""
	Bucket       ItemName = "bucket"
	InstantBuild ItemName = "instant-build"
	DevMat       ItemName = "dev-mat"
	CoinSmall    ItemName = "coin-small"
	CoinMedium   ItemName = "coin-medium"
	CoinLarge    ItemName = "coin-large"
)

// itemCodes maps master data item codes to item names
var itemCodes = map[int]ItemName{
	0:  NoItem,
	1:  Bucket,
	2:  InstantBuild,
	3:  DevMat,
	10: CoinSmall,
	11: CoinMedium,
	12: CoinLarge,
}

// ItemFromCode maps a master data item code to its name
func ItemFromCode(code int) (ItemName, error) {
	name, ok := itemCodes[code]
	if !ok {
		return NoItem, &UnknownItemCodeError{Code: code}
	}
	return name, nil
}

// Item is a reward item with its maximum count
type Item struct {
	Name     ItemName `yaml:"name" json:"name"`
	MaxCount int      `yaml:"max_count" json:"max_count"`
}

// HasReward reports whether the item can actually be obtained
func (i Item) HasReward() bool {
	return i.Name != NoItem && i.MaxCount > 0
}

// RangeText renders the obtainable count: "0~n" for probabilistic items,
// "1" or "1~n" when guaranteed on great success, "-" when there is no reward.
func (i Item) RangeText(guaranteed bool) string {
	if !i.HasReward() {
		return "-"
	}
	if guaranteed {
		if i.MaxCount > 1 {
			return fmt.Sprintf("1~%d", i.MaxCount)
		}
		return "1"
	}
	return fmt.Sprintf("0~%d", i.MaxCount)
}

// String renders the item as "bucket x0~2"
func (i Item) String() string {
	return i.Label(false)
}

// Label renders the item name followed by its count range
func (i Item) Label(guaranteed bool) string {
	if !i.HasReward() {
		return "-"
	}
	return fmt.Sprintf("%s x%s", i.Name, i.RangeText(guaranteed))
}
