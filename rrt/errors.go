package rrt

import "github.com/pkg/errors"

func newUnknownStrategyError(name StrategyName) error {
	return errors.Errorf("no strategy registered with name %q", string(name))
}
