package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillwaves/skillwaves-server/internal/model"
	"github.com/skillwaves/skillwaves-server/internal/model/request"
	"github.com/skillwaves/skillwaves-server/internal/model/response"
	"github.com/skillwaves/skillwaves-server/internal/store"
	"github.com/skillwaves/skillwaves-server/internal/validation"
)

// BidHandler serves the bidjobs collection endpoints.
type BidHandler struct {
	bids store.BidStore
}

func NewBidHandler(bids store.BidStore) *BidHandler {
	return &BidHandler{bids: bids}
}

// ListBids godoc
//
//	@Summary		List bids filtered by bidder and/or job owner
//	@Tags			Bids
//	@Produce		json
//	@Param			user-email		query		string	false	"bidder email"
//	@Param			employer-email	query		string	false	"job owner email"
//	@Success		200	{object}	response.ResponseData{data=[]model.Bid}
//	@Failure		401	{object}	response.ResponseData
//	@Router			/v1/bid/all [get]
func (h *BidHandler) ListBids(c *gin.Context) {
	query := validation.Query[request.ListBidsQuery](c)

	bids, err := h.bids.List(c.Request.Context(), store.BidFilter{
		EmployeeEmail: query.UserEmail,
		JobOwnerEmail: query.EmployerEmail,
	})
	if err != nil {
		upstreamFailure(c, err)
		return
	}

	total := len(bids)
	c.JSON(http.StatusOK, response.ResponseData{Ec: http.StatusOK, Total: &total, Data: bids})
}

// CreateBid godoc
//
//	@Summary		Submit a bid against a job
//	@Tags			Bids
//	@Accept			json
//	@Produce		json
//	@Param			bid	body		request.CreateBidRequest	true	"bid fields"
//	@Success		200	{object}	response.ResponseData{data=response.InsertResult}
//	@Router			/v1/job/bid-job [post]
func (h *BidHandler) CreateBid(c *gin.Context) {
	body := validation.Body[request.CreateBidRequest](c)

	result, err := h.bids.Create(c.Request.Context(), model.Bid{
		JobID:         body.JobID,
		JobTitle:      body.JobTitle,
		EmployeeEmail: body.EmployeeEmail,
		JobOwnerEmail: body.JobOwnerEmail,
		Status:        body.Status,
		Price:         body.Price,
		Deadline:      body.Deadline,
		Comment:       body.Comment,
	})
	if err != nil {
		upstreamFailure(c, err)
		return
	}

	c.JSON(http.StatusOK, response.ResponseData{Ec: http.StatusOK, Data: result})
}

// UpdateBidStatus godoc
//
//	@Summary		Patch the status of a bid
//	@Tags			Bids
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"bid id (hex)"
//	@Param			status	body		request.UpdateBidStatusRequest	true	"new status"
//	@Success		200	{object}	response.ResponseData{data=response.UpdateResult}
//	@Router			/v1/bid/update-specific/{id} [patch]
func (h *BidHandler) UpdateBidStatus(c *gin.Context) {
	params := validation.Params[request.IDParam](c)
	body := validation.Body[request.UpdateBidStatusRequest](c)

	result, err := h.bids.PatchStatus(c.Request.Context(), params.ID, body.Status)
	if err != nil {
		upstreamFailure(c, err)
		return
	}

	c.JSON(http.StatusOK, response.ResponseData{Ec: http.StatusOK, Data: result})
}
