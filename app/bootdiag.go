//go:build !tinygo || !bootdebug

package app

import "watchface/hal"

func bootStep(hal.HAL, string) {}
