package scene

import "time"

// Clock reports the local time of day for the analog clock hands.
type Clock func() (hour, minute, second int)

// SystemClock samples the wall clock in local time.
func SystemClock() (int, int, int) {
	now := time.Now()
	return now.Hour(), now.Minute(), now.Second()
}

// HandAngles converts a time of day to the Z rotations of the three clock
// hands, in degrees. Angles are negative so the hands sweep clockwise under
// the transform composer's rotation convention. The hour hand advances
// continuously with the minutes.
func HandAngles(hour, minute, second int) (hourAngle, minuteAngle, secondAngle float32) {
	hourAngle = -(float32(hour%12) + float32(minute)/60) * 30
	minuteAngle = -float32(minute) * 6
	secondAngle = -float32(second) * 6
	return hourAngle, minuteAngle, secondAngle
}
