/*
Package daytime provides time-of-day values and interval tables.

A DayTime is a clock time without a date: totally ordered, subtractable,
and derived from any Clock. A Schedule maps day times to intervals and
can drive a timer whose cadence changes over the course of a day:

	sched, _ := daytime.NewSchedule([]daytime.Entry{
		{At: daytime.At(6, 0, 0), Interval: time.Minute},
		{At: daytime.At(22, 0, 0), Interval: 15 * time.Minute},
	})

	tmr, _ := timer.NewWithConfig(timer.Config{Source: sched})

Resolution picks the interval of the greatest threshold before the
current time of day; before the first threshold the first entry's
interval applies.
*/
package daytime
