// skycalc prints sun and moon directions for a single instant.
package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/Faultbox/midgard-sky/pkg/sky"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "orbital", "orb":
		cmdOrbital(args)
	case "solar", "sun":
		cmdSolar(args)
	case "lunar", "moon":
		cmdLunar(args)
	case "ephemeris", "eph":
		cmdEphemeris(args)
	case "times":
		cmdTimes(args)
	case "path":
		cmdPath(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`skycalc - sun and moon direction calculator

Usage:
  skycalc <command> [options]

Commands:
  orbital   -d <days> [-bias b] [-year n] [-tilt deg]   Orbital model
            [-moon-year n -moon-tilt deg -moon-bias b]  with a second body
  solar     -day <n> -hour <h>                          Solar position model
  lunar     -day <n> -hour <h>                          Simplified lunar orbit
  ephemeris [-time <RFC3339>]                           Sun and moon from the ephemeris
  times     [-date YYYY-MM-DD]                          Sunrise, solar noon, sunset
  path      -model <kind> [-day n] [-step h]            Directions over one day

Observer options (all but lunar): -lat <deg> -lon <deg> -tz <hours>

Examples:
  skycalc orbital -d 0.25 -lat 40
  skycalc solar -day 172 -hour 12 -lat 48.1 -lon 11.6 -tz 1
  skycalc ephemeris -time 2025-06-21T12:00:00Z -lat 48.1 -lon 11.6
  skycalc path -model solar-lunar -day 80 -step 3`)
}

// observerFlags registers the shared observer options on fs.
func observerFlags(fs *flag.FlagSet) *sky.Observer {
	obs := &sky.Observer{}
	fs.Float64Var(&obs.Latitude, "lat", 0, "Observer latitude in degrees")
	fs.Float64Var(&obs.Longitude, "lon", 0, "Observer longitude in degrees")
	fs.Float64Var(&obs.Timezone, "tz", 0, "Timezone offset from UTC in hours")
	return obs
}

func checkObserver(obs *sky.Observer) {
	if err := obs.Validate(); err != nil {
		fatalf("Error: %v", err)
	}
}

func cmdOrbital(args []string) {
	fs := flag.NewFlagSet("orbital", flag.ExitOnError)
	obs := observerFlags(fs)
	days := fs.Float64("d", 0, "Continuous day count")
	bias := fs.Float64("bias", 0, "Day offset added to -d")
	year := fs.Float64("year", sky.DefaultYearLength, "Days per orbit")
	tilt := fs.Float64("tilt", sky.DefaultAxialTilt, "Axial tilt in degrees")
	moonYear := fs.Float64("moon-year", 0, "Days per orbit of a second body (0 for none)")
	moonTilt := fs.Float64("moon-tilt", 0, "Axial tilt of the second body's orbit in degrees")
	moonBias := fs.Float64("moon-bias", 0, "Day offset of the second body")
	fs.Parse(args)
	checkObserver(obs)

	orbit := sky.OrbitParams{YearLength: *year, AxialTilt: *tilt}
	model := sky.OrbitalModel{Orbit: orbit, Bias: *bias}
	if *moonYear > 0 {
		model.MoonOrbit = &sky.OrbitParams{YearLength: *moonYear, AxialTilt: *moonTilt}
		model.MoonBias = *moonBias
	}
	pos := sky.ComputeOrbitalPosition(*days, *bias, orbit, *obs)

	fmt.Printf("Days:        %g (bias %g)\n", *days, *bias)
	fmt.Printf("Self angle:  %.3f°\n", deg(pos.SelfAngle))
	fmt.Printf("Orbit angle: %.3f°\n", deg(pos.OrbitAngle))
	fmt.Printf("Declination: %.3f°\n", deg(pos.Declination))
	fmt.Println()
	clk := sky.Clock{Days: *days}
	printResult(os.Stdout, "sun", model.Sun(clk, *obs))
	if moon, ok := model.Moon(clk, *obs); ok {
		printResult(os.Stdout, "moon", moon)
	}
}

func cmdSolar(args []string) {
	fs := flag.NewFlagSet("solar", flag.ExitOnError)
	obs := observerFlags(fs)
	day := fs.Int("day", 1, "Day of year (1-365)")
	hour := fs.Float64("hour", 12, "Local hour (0-24)")
	fs.Parse(args)
	checkObserver(obs)

	pos := sky.ComputeSolarPosition(*day, *hour, *obs)

	fmt.Printf("Day %d, %s local\n", *day, formatHour(*hour))
	fmt.Printf("Declination:     %.3f°\n", deg(pos.Declination))
	fmt.Printf("Equation of time: %.2f min\n", pos.EquationOfTime)
	fmt.Printf("True solar time: %s\n", formatHour(pos.TrueSolarTime/60))
	fmt.Printf("Hour angle:      %.3f°\n", deg(pos.HourAngle))
	fmt.Println()
	printResult(os.Stdout, "sun", sky.SolarLunarModel{}.Sun(sky.Clock{Day: *day, Hour: *hour}, *obs))
}

func cmdLunar(args []string) {
	fs := flag.NewFlagSet("lunar", flag.ExitOnError)
	day := fs.Int("day", 1, "Day of year")
	hour := fs.Float64("hour", 0, "Hour of day")
	period := fs.Int("period", sky.DefaultLunarOrbitDays, "Orbit period in days")
	incl := fs.Float64("incl", sky.DefaultLunarInclination, "Orbit inclination in degrees")
	fs.Parse(args)

	lunar := sky.LunarParams{OrbitDays: *period, Inclination: *incl}
	r, _ := sky.SolarLunarModel{Lunar: lunar}.Moon(sky.Clock{Day: *day, Hour: *hour}, sky.Observer{})

	fmt.Printf("Day %d, %s\n", *day, formatHour(*hour))
	fmt.Printf("Orbit angle: %.3f°\n", deg(lunar.OrbitAngle(*day, *hour)))
	fmt.Println()
	printResult(os.Stdout, "moon", r)
}

func cmdEphemeris(args []string) {
	fs := flag.NewFlagSet("ephemeris", flag.ExitOnError)
	obs := observerFlags(fs)
	at := fs.String("time", "", "Instant in RFC3339 (default now)")
	fs.Parse(args)
	checkObserver(obs)

	t := parseTime(*at)
	model := sky.EphemerisModel{}
	clk := sky.Clock{Time: t}

	fmt.Printf("Time: %s\n", t.Format(time.RFC3339))
	fmt.Println()
	printResult(os.Stdout, "sun", model.Sun(clk, *obs))
	moon, _ := model.Moon(clk, *obs)
	printResult(os.Stdout, "moon", moon)

	fraction, phase := model.MoonPhase(clk, *obs)
	fmt.Printf("moon illumination %.1f%%, phase %.3f\n", fraction*100, phase)
}

func cmdTimes(args []string) {
	fs := flag.NewFlagSet("times", flag.ExitOnError)
	obs := observerFlags(fs)
	date := fs.String("date", "", "Date as YYYY-MM-DD (default today)")
	fs.Parse(args)
	checkObserver(obs)

	t := time.Now()
	today := *date == ""
	if !today {
		var err error
		t, err = time.Parse("2006-01-02", *date)
		if err != nil {
			fatalf("Error: invalid date %q: %v", *date, err)
		}
		t = t.Add(12 * time.Hour)
	}

	times := sky.ComputeSunTimes(t, *obs)
	zone := time.FixedZone("local", int(obs.Timezone*3600))

	fmt.Printf("Date:       %s\n", t.Format("2006-01-02"))
	printEvent("Sunrise:   ", times.Sunrise, zone, today)
	printEvent("Solar noon:", times.SolarNoon, zone, today)
	printEvent("Sunset:    ", times.Sunset, zone, today)
	if !times.Sunrise.IsZero() && !times.Sunset.IsZero() {
		fmt.Printf("Day length: %s\n", times.Sunset.Sub(times.Sunrise).Round(time.Minute))
	}
}

// printEvent prints a daily event, with a relative time when the date is
// today.
func printEvent(label string, t time.Time, zone *time.Location, today bool) {
	if today && !t.IsZero() {
		fmt.Printf("%s %s (%s)\n", label, formatInstant(t, zone), humanize.Time(t))
		return
	}
	fmt.Printf("%s %s\n", label, formatInstant(t, zone))
}

func cmdPath(args []string) {
	fs := flag.NewFlagSet("path", flag.ExitOnError)
	obs := observerFlags(fs)
	kindName := fs.String("model", string(sky.KindSolarLunar), "Sky model: orbital, solar-lunar or ephemeris")
	day := fs.Int("day", 1, "Day of year")
	step := fs.Float64("step", 1, "Hours between samples")
	fs.Parse(args)
	checkObserver(obs)

	if *step <= 0 {
		fatalf("Error: -step must be positive")
	}
	kind, err := sky.ParseKind(*kindName)
	if err != nil {
		fatalf("Error: %v", err)
	}
	model, err := sky.NewModel(kind, sky.ModelOptions{
		Orbit:         sky.DefaultOrbit(),
		Lunar:         sky.DefaultLunar(),
		EphemerisYear: sky.DefaultEphemerisYear,
	})
	if err != nil {
		fatalf("Error: %v", err)
	}
	calc, err := sky.NewCalculator(model, *obs)
	if err != nil {
		fatalf("Error: %v", err)
	}

	fmt.Printf("%-6s %9s %9s %9s %9s\n", "hour", "sun alt", "sun az", "moon alt", "moon az")
	for h := 0.0; h <= 24; h += *step {
		// The orbital day count starts at local noon.
		clk := sky.Clock{
			Days: float64(*day-1) + (h-12)/24,
			Day:  *day,
			Hour: h,
		}
		moon, ok := calc.Moon(clk)
		fmt.Println(pathRow(h, calc.Sun(clk), moon, ok))
	}
}

// pathRow formats one sample of the path table. The moon columns are left
// out when hasMoon is false.
func pathRow(hour float64, sun, moon sky.Result, hasMoon bool) string {
	line := fmt.Sprintf("%-6s %9.2f %9s", formatHour(hour), sun.Horizontal.AltitudeDeg(), formatAzimuth(sun.Horizontal))
	if hasMoon {
		line += fmt.Sprintf(" %9.2f %9s", moon.Horizontal.AltitudeDeg(), formatAzimuth(moon.Horizontal))
	}
	return line
}

func printResult(w io.Writer, name string, r sky.Result) {
	d := r.Direction
	fmt.Fprintf(w, "%-5s direction (%+.5f, %+.5f, %+.5f)  altitude %7.2f°  azimuth %s\n",
		name, d.X, d.Y, d.Z, r.Horizontal.AltitudeDeg(), formatAzimuth(r.Horizontal))
}

func formatAzimuth(h sky.Horizontal) string {
	if h.Indeterminate {
		return "n/a"
	}
	return fmt.Sprintf("%.2f°", h.AzimuthDeg())
}

func formatHour(h float64) string {
	hh := int(h)
	mm := int((h - float64(hh)) * 60)
	return fmt.Sprintf("%02d:%02d", hh, mm)
}

func formatInstant(t time.Time, zone *time.Location) string {
	if t.IsZero() {
		return "none"
	}
	return t.In(zone).Format("15:04:05")
}

func parseTime(s string) time.Time {
	if s == "" {
		return time.Now()
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		fatalf("Error: invalid time %q: %v", s, err)
	}
	return t
}

func deg(rad float64) float64 {
	return rad * 180 / math.Pi
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
