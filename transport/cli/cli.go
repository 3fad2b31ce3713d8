package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"roombooking/config"
	"roombooking/infras/otel"
	authDto "roombooking/internal/domains/auth/model/dto"
	authService "roombooking/internal/domains/auth/service"
	"roombooking/internal/domains/booking/model"
	bookingDto "roombooking/internal/domains/booking/model/dto"
	bookingService "roombooking/internal/domains/booking/service"
	roomDto "roombooking/internal/domains/room/model/dto"
	roomService "roombooking/internal/domains/room/service"
	sessionModel "roombooking/internal/domains/session/model"
	sessionService "roombooking/internal/domains/session/service"
	gDto "roombooking/shared/dto"
	"roombooking/shared/failure"
	"roombooking/shared/timezone"
	"roombooking/shared/validator"
	"text/tabwriter"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

const (
	otelCLIScopeName = "cli"
	exitFailure      = 1
	exitPartial      = 2
)

const (
	flagEmail    = "email"
	flagPassword = "password"
	flagUsername = "username"
	flagFullName = "full-name"
	flagID       = "id"
	flagType     = "type"
	flagCurrency = "currency"
	flagGuests   = "guests"
	flagSort     = "sort"
	flagDesc     = "desc"
	flagPage     = "page"
	flagLimit    = "limit"
	flagRoom     = "room"
	flagStart    = "start"
	flagEnd      = "end"
)

const signInHint = "not signed in, run `roombooking login` first"

type CLI struct {
	app      *cli.App
	auth     authService.Auth
	rooms    roomService.Room
	bookings bookingService.Booking
	sessions sessionService.Session
	otel     otel.Otel
	out      io.Writer
}

func New(
	cfg *config.Config,
	auth authService.Auth,
	rooms roomService.Room,
	bookings bookingService.Booking,
	sessions sessionService.Session,
	otel otel.Otel,
) *CLI {
	c := &CLI{
		auth:     auth,
		rooms:    rooms,
		bookings: bookings,
		sessions: sessions,
		otel:     otel,
		out:      os.Stdout,
	}

	c.app = &cli.App{
		Name:     cfg.App.Name,
		Usage:    "book rooms on " + cfg.API.BaseURL,
		Writer:   os.Stdout,
		Before:   c.before,
		Commands: c.commands(),
		// Exit codes are reported by the caller of Run.
		ExitErrHandler: func(*cli.Context, error) {},
	}

	return c
}

// SetOutput redirects command output, stdout by default.
func (c *CLI) SetOutput(w io.Writer) {
	c.out = w
	c.app.Writer = w
	c.app.ErrWriter = w
}

func (c *CLI) Run(ctx context.Context, args []string) error {
	return c.app.RunContext(ctx, args) //nolint:wrapcheck
}

func (c *CLI) before(ctx *cli.Context) error {
	if err := c.sessions.Init(ctx.Context); err != nil {
		log.Warn().Err(err).Msg("Could not restore session, continuing signed out")
	}

	return nil
}

func (c *CLI) commands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "login",
			Usage: "sign in with email and password",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: flagEmail, Required: true},
				&cli.StringFlag{Name: flagPassword, Required: true, EnvVars: []string{"ROOMBOOKING_PASSWORD"}},
			},
			Action: c.login,
		},
		{
			Name:  "register",
			Usage: "create an account and sign in",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: flagUsername, Required: true},
				&cli.StringFlag{Name: flagEmail, Required: true},
				&cli.StringFlag{Name: flagPassword, Required: true, EnvVars: []string{"ROOMBOOKING_PASSWORD"}},
				&cli.StringFlag{Name: flagFullName},
			},
			Action: c.register,
		},
		{
			Name:   "logout",
			Usage:  "forget the stored session",
			Action: c.logout,
		},
		{
			Name:   "whoami",
			Usage:  "show the signed-in user",
			Action: c.whoami,
		},
		{
			Name:  "rooms",
			Usage: "list rooms, or show one with --id",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: flagID},
				&cli.StringFlag{Name: flagType, Usage: "suite, standard or deluxe"},
				&cli.StringFlag{Name: flagCurrency, Usage: "USD or EUR"},
				&cli.IntFlag{Name: flagGuests},
				&cli.StringFlag{Name: flagSort, Usage: "name, price or max_occupancy"},
				&cli.BoolFlag{Name: flagDesc},
				&cli.IntFlag{Name: flagPage},
				&cli.IntFlag{Name: flagLimit},
			},
			Action: c.listRooms,
		},
		{
			Name:  "book",
			Usage: "reserve a room for every day from --start to --end",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: flagRoom, Required: true},
				&cli.StringFlag{Name: flagStart, Usage: "YYYY-MM-DD, defaults to today"},
				&cli.StringFlag{Name: flagEnd, Usage: "YYYY-MM-DD, defaults to --start"},
			},
			Action: c.book,
		},
		{
			Name:   "bookings",
			Usage:  "list my bookings",
			Action: c.listBookings,
		},
		{
			Name:  "cancel",
			Usage: "cancel one booked day",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: flagID, Required: true},
			},
			Action: c.cancel,
		},
	}
}

func (c *CLI) current() *sessionModel.Session {
	sess, ok := c.sessions.Current()
	if !ok {
		return nil
	}

	return &sess
}

func (c *CLI) login(ctx *cli.Context) error {
	res, err := c.auth.Login(ctx.Context, authDto.LoginRequest{
		Email:    ctx.String(flagEmail),
		Password: ctx.String(flagPassword),
	})
	if err != nil {
		return exit(err)
	}

	fmt.Fprintf(c.out, "signed in as %s\n", res.Username)

	return nil
}

func (c *CLI) register(ctx *cli.Context) error {
	res, err := c.auth.Register(ctx.Context, authDto.RegisterRequest{
		Username: ctx.String(flagUsername),
		Email:    ctx.String(flagEmail),
		Password: ctx.String(flagPassword),
		FullName: ctx.String(flagFullName),
	})
	if err != nil {
		return exit(err)
	}

	fmt.Fprintf(c.out, "registered and signed in as %s\n", res.Username)

	return nil
}

func (c *CLI) logout(ctx *cli.Context) error {
	if err := c.auth.Logout(ctx.Context); err != nil {
		return exit(err)
	}

	fmt.Fprintln(c.out, "signed out")

	return nil
}

func (c *CLI) whoami(ctx *cli.Context) error {
	res, err := c.auth.Current(ctx.Context)
	if err != nil {
		return exit(err)
	}

	fmt.Fprintf(c.out, "%s <%s> (id %s)\n", res.Username, res.Email, res.ID)

	return nil
}

func (c *CLI) listRooms(ctx *cli.Context) error {
	tw := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	defer tw.Flush()

	fmt.Fprintln(tw, "ID\tNAME\tTYPE\tPRICE\tGUESTS")

	if id := ctx.String(flagID); id != "" {
		room, err := c.rooms.Get(ctx.Context, id)
		if err != nil {
			return exit(err)
		}

		writeRoom(tw, room)

		return nil
	}

	req := roomDto.GetRoomsRequest{
		Type:     ctx.String(flagType),
		Currency: ctx.String(flagCurrency),
		Guests:   ctx.Int(flagGuests),
	}
	req.SortBy = ctx.String(flagSort)
	req.Page = ctx.Int(flagPage)
	req.Limit = ctx.Int(flagLimit)

	if ctx.Bool(flagDesc) {
		req.SortDir = gDto.SortDirDesc
	}

	if err := validator.ValidateStruct(&req); err != nil {
		return exit(err)
	}

	res, err := c.rooms.GetAll(ctx.Context, req)
	if err != nil {
		return exit(err)
	}

	for _, room := range res.Rooms {
		writeRoom(tw, room)
	}

	if res.Pagination != nil {
		fmt.Fprintf(tw, "page %d of %d, %d rooms\n", res.Pagination.Page, res.Pagination.TotalPage, res.TotalData)
	}

	return nil
}

func writeRoom(w io.Writer, room roomDto.RoomResponse) {
	fmt.Fprintf(w, "%s\t%s\t%s\t%d %s\t%d\n", room.ID, room.Name, room.Type, room.PricePerNight, room.Currency, room.MaxOccupancy)
}

func (c *CLI) book(ctx *cli.Context) error {
	cmdCtx, scope := c.otel.NewScope(ctx.Context, otelCLIScopeName, otelCLIScopeName+".book")
	defer scope.End()

	req := bookingDto.SubmitBookingRequest{
		RoomID:    ctx.String(flagRoom),
		StartDate: ctx.String(flagStart),
		EndDate:   ctx.String(flagEnd),
	}

	if req.StartDate == "" {
		req.StartDate = timezone.FormatDate(timezone.Today())
	}

	res, err := c.bookings.Submit(cmdCtx, c.current(), req, func(booked model.OccupiedDate) {
		fmt.Fprintf(c.out, "booked %s (booking %s)\n", booked.Date, booked.ID)
	})
	if err != nil {
		scope.TraceError(err)

		return exit(err)
	}

	fmt.Fprintf(c.out, "%d of %d days booked\n", len(res.Succeeded), res.Total)

	for _, day := range res.Failed {
		fmt.Fprintf(c.out, "failed %s: %s\n", day.Date, day.Error)
	}

	if !res.Complete() {
		return cli.Exit("", exitPartial)
	}

	return nil
}

func (c *CLI) listBookings(ctx *cli.Context) error {
	res, err := c.bookings.GetMine(ctx.Context, c.current())
	if err != nil {
		return exit(err)
	}

	tw := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	defer tw.Flush()

	fmt.Fprintln(tw, "ID\tROOM\tDATE")

	for _, b := range res.Bookings {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", b.ID, b.RoomID, b.Date)
	}

	return nil
}

func (c *CLI) cancel(ctx *cli.Context) error {
	id := ctx.String(flagID)

	if err := c.bookings.Cancel(ctx.Context, c.current(), id); err != nil {
		return exit(err)
	}

	fmt.Fprintf(c.out, "cancelled booking %s\n", id)

	return nil
}

// exit turns a service error into a process exit. A redirect to the sign-in
// route becomes a hint since there is no page to send the user to.
func exit(err error) error {
	if _, ok := failure.GetLocation(err); ok {
		return cli.Exit(signInHint, exitFailure)
	}

	var f *failure.Failure
	if errors.As(err, &f) {
		return cli.Exit(f.Message, exitFailure)
	}

	return cli.Exit(err.Error(), exitFailure)
}
