// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package population

import (
	"sort"

	"github.com/emer/emergent/timer"
)

// FunTimerStart starts function timer for given function name -- ensures creation of timer
func (pp *Population) FunTimerStart(fun string) {
	ft, ok := pp.FunTimes[fun]
	if !ok {
		ft = &timer.Time{}
		pp.FunTimes[fun] = ft
	}
	ft.Start()
}

// FunTimerStop stops function timer -- timer must already exist
func (pp *Population) FunTimerStop(fun string) {
	ft := pp.FunTimes[fun]
	ft.Stop()
}

// TimerReport logs the amount of time spent in each function
func (pp *Population) TimerReport() {
	fnms := make([]string, 0, len(pp.FunTimes))
	for k := range pp.FunTimes {
		fnms = append(fnms, k)
	}
	sort.Strings(fnms)
	secs := make([]float64, len(fnms))
	tot := 0.0
	for i, fn := range fnms {
		secs[i] = pp.FunTimes[fn].TotalSecs()
		tot += secs[i]
	}
	for i, fn := range fnms {
		pct := 0.0
		if tot > 0 {
			pct = 100 * secs[i] / tot
		}
		pp.Log.Info("timer", "function", fn, "secs", secs[i], "pct", pct)
	}
	pp.Log.Info("timer", "model", pp.Config.Name, "threads", pp.Config.NThreads, "total_secs", tot)
}

// TimerReset resets all function timers
func (pp *Population) TimerReset() {
	for _, ft := range pp.FunTimes {
		ft.Reset()
	}
}
