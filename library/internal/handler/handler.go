package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	md "github.com/tTrmc/library-service/pkg/middleware"

	"github.com/tTrmc/library-service/library/internal/model"
	"github.com/tTrmc/library-service/pkg/validate"
)

type Handler struct {
	librarySvc LibraryService
	log        *zap.Logger
}

func New(librarySvc LibraryService, log *zap.Logger) *Handler {
	return &Handler{
		librarySvc: librarySvc,
		log:        log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig()),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)

	api.POST("/books", h.AddBook)
	api.GET("/books/search", h.SearchBooks)
	api.POST("/books/:bookID/borrow", h.BorrowBook)
	api.POST("/books/:bookID/return", h.ReturnBook)

	api.GET("/patrons/:patronID/fees", h.LateFee)
	api.GET("/patrons/:patronID/status", h.PatronStatus)

	api.POST("/payments/late-fees", h.PayLateFees)
	api.POST("/payments/refunds", h.RefundLateFeePayment)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) AddBook(c echo.Context) error {
	var req model.AddBookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ok, msg := h.librarySvc.AddBook(c.Request().Context(), req.Title, req.Author, req.ISBN, req.TotalCopies)
	if !ok {
		return c.JSON(http.StatusBadRequest, model.OperationResult{Message: msg})
	}
	return c.JSON(http.StatusCreated, model.OperationResult{Success: true, Message: msg})
}

func (h *Handler) BorrowBook(c echo.Context) error {
	bookID, err := strconv.Atoi(c.Param("bookID"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, model.OperationResult{Message: "Invalid book ID."})
	}
	var req model.CirculationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ok, msg := h.librarySvc.BorrowBook(c.Request().Context(), req.PatronID, bookID)
	if !ok {
		return c.JSON(http.StatusBadRequest, model.OperationResult{Message: msg})
	}
	return c.JSON(http.StatusOK, model.OperationResult{Success: true, Message: msg})
}

func (h *Handler) ReturnBook(c echo.Context) error {
	bookID, err := strconv.Atoi(c.Param("bookID"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, model.OperationResult{Message: "Invalid book ID."})
	}
	var req model.CirculationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ok, msg := h.librarySvc.ReturnBook(c.Request().Context(), req.PatronID, bookID)
	if !ok {
		return c.JSON(http.StatusBadRequest, model.OperationResult{Message: msg})
	}
	return c.JSON(http.StatusOK, model.OperationResult{Success: true, Message: msg})
}

func (h *Handler) SearchBooks(c echo.Context) error {
	term := c.QueryParam("term")
	searchType := c.QueryParam("type")

	books := h.librarySvc.SearchBooks(c.Request().Context(), term, searchType)
	return c.JSON(http.StatusOK, books)
}

// LateFee is read-only: outcomes including validation problems are reported
// in the payload status, matching the fee-lookup contract.
func (h *Handler) LateFee(c echo.Context) error {
	patronID := c.Param("patronID")
	bookID, err := strconv.Atoi(c.QueryParam("bookId"))
	if err != nil {
		return c.JSON(http.StatusOK, model.LateFeeInfo{Status: "Invalid book ID."})
	}

	info := h.librarySvc.CalculateLateFee(c.Request().Context(), patronID, bookID)
	return c.JSON(http.StatusOK, info)
}

func (h *Handler) PatronStatus(c echo.Context) error {
	report := h.librarySvc.PatronStatusReport(c.Request().Context(), c.Param("patronID"))
	return c.JSON(http.StatusOK, report)
}

func (h *Handler) PayLateFees(c echo.Context) error {
	var req model.PayLateFeesRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	bookID, err := strconv.Atoi(req.BookID)
	if err != nil {
		return c.JSON(http.StatusOK, model.PaymentOutcome{Status: "Invalid book ID."})
	}

	outcome := h.librarySvc.PayLateFees(c.Request().Context(), req.PatronID, bookID)
	return c.JSON(http.StatusOK, outcome)
}

func (h *Handler) RefundLateFeePayment(c echo.Context) error {
	var req model.RefundRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	outcome := h.librarySvc.RefundLateFeePayment(c.Request().Context(), req.TransactionID, req.Amount)
	return c.JSON(http.StatusOK, outcome)
}
