package glm

import "golang.org/x/exp/constraints"

type numeric interface {
	constraints.Float
}
