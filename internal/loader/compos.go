package loader

import "github.com/napolitain/exped-planner/internal/models"

// MinimalFleetCompos returns the minimum fleet composition of every
// built-in expedition. models.AnyShip counts ships of any type; an
// AnyShip entry of 0 means the fleet may still be padded with any type.
func MinimalFleetCompos() map[int]models.FleetCompo {
	return map[int]models.FleetCompo{
		1:  {models.AnyShip: 2},
		2:  {models.AnyShip: 4},
		3:  {models.AnyShip: 3},
		4:  {models.CL: 1, models.DD: 2, models.AnyShip: 0},
		5:  {models.CL: 1, models.DD: 2, models.AnyShip: 1},
		6:  {models.AnyShip: 4},
		7:  {models.AnyShip: 6},
		8:  {models.AnyShip: 6},
		9:  {models.CL: 1, models.DD: 2, models.AnyShip: 1},
		10: {models.CL: 2, models.AnyShip: 1},
		11: {models.DD: 2, models.AnyShip: 2},
		12: {models.DD: 2, models.AnyShip: 2},
		13: {models.CL: 1, models.DD: 4, models.AnyShip: 0},
		14: {models.CL: 1, models.DD: 3, models.AnyShip: 2},
		15: {models.CV: 2, models.DD: 2, models.AnyShip: 2},
		16: {models.CL: 1, models.DD: 2, models.AnyShip: 3},
		17: {models.CL: 1, models.DD: 3, models.AnyShip: 2},
		18: {models.CV: 3, models.DD: 2, models.AnyShip: 1},
		19: {models.BBV: 2, models.DD: 2, models.AnyShip: 2},
		20: {models.SS: 1, models.CL: 1, models.AnyShip: 0},
		21: {models.CL: 1, models.DD: 4, models.AnyShip: 0},
		22: {models.CA: 1, models.CL: 1, models.DD: 2, models.AnyShip: 2},
		23: {models.BBV: 2, models.DD: 2, models.AnyShip: 2},
		24: {models.CL: 1, models.DD: 4, models.AnyShip: 1},
		25: {models.CA: 2, models.DD: 2, models.AnyShip: 0},
		26: {models.CV: 1, models.CL: 1, models.DD: 2, models.AnyShip: 0},
		27: {models.SS: 2, models.AnyShip: 0},
		28: {models.CL: 1, models.DD: 3, models.AnyShip: 2},
		29: {models.SS: 3, models.AnyShip: 0},
		30: {models.SS: 4, models.AnyShip: 0},
		31: {models.SS: 4, models.AnyShip: 0},
		32: {models.CT: 1, models.DD: 2, models.AnyShip: 0},
		33: {models.DD: 2, models.AnyShip: 0},
		34: {models.DD: 2, models.AnyShip: 0},
		35: {models.CV: 2, models.CA: 1, models.DD: 1, models.AnyShip: 2},
		36: {models.AV: 2, models.CL: 1, models.DD: 1, models.AnyShip: 2},
		37: {models.CL: 1, models.DD: 5, models.AnyShip: 0},
		38: {models.DD: 5, models.AnyShip: 1},
		39: {models.AS: 1, models.SS: 4, models.AnyShip: 0},
		40: {models.CL: 1, models.AV: 2, models.DD: 2, models.AnyShip: 1},
	}
}
