package generator

import (
	"fmt"
	"time"

	"airline-data-generator/internal/domain"
)

const (
	minAmount     = 1.00
	maxAmount     = 5000.00
	minTaxAmount  = 1.00
	maxTaxAmount  = 100.00
	maxFlightNum  = 400
	fareLineWords = 10
)

// Builder assembles FulfillmentDocuments. It keeps no state between calls
// other than its random source.
type Builder struct {
	fields *Fields
}

func NewBuilder(fields *Fields) *Builder {
	return &Builder{fields: fields}
}

// leg is one direction of the round trip.
type leg struct {
	origin      string
	destination string
	departure   time.Time
}

func (b *Builder) BuildDocument() (domain.FulfillmentDocument, error) {
	f := b.fields

	cityCode, err := f.RandomChoice(domain.SenderCityCodes)
	if err != nil {
		return domain.FulfillmentDocument{}, err
	}

	// Origin and destination are drawn independently and may coincide.
	originCode := f.FakeAirportIataCode()
	destCode := f.FakeAirportIataCode()

	outboundAt, err := f.RandomDateTimeBetween(f.DaysAgo(30), f.DaysAgo(2))
	if err != nil {
		return domain.FulfillmentDocument{}, err
	}
	returnAt, err := f.RandomDateTimeBetween(f.Now(), f.DaysAhead(5))
	if err != nil {
		return domain.FulfillmentDocument{}, err
	}

	outbound := leg{origin: originCode, destination: destCode, departure: outboundAt}
	inbound := leg{origin: destCode, destination: originCode, departure: returnAt}

	refund, err := b.buildRefundData(outbound, inbound)
	if err != nil {
		return domain.FulfillmentDocument{}, err
	}

	transactionID, err := f.FakeIdentifier()
	if err != nil {
		return domain.FulfillmentDocument{}, err
	}

	sender, err := b.buildSender(cityCode)
	if err != nil {
		return domain.FulfillmentDocument{}, err
	}

	return domain.FulfillmentDocument{
		FulfillmentInfo: domain.FulfillmentInfo{
			IntentCriteria:      domain.IntentCriteria{CallerIntentText: domain.IntentRefund},
			RefundDataList:      []domain.RefundData{refund},
			RefundTransactionID: transactionID,
			TravelContextText:   domain.TravelContext,
			TravelContextDesc:   domain.TravelContext,
			PnrSegment:          buildPnrSegments(outbound, inbound),
			EligibilityStatus:   domain.EligibilityStatus{HasRemarks: false},
		},
		Sender: sender,
	}, nil
}

func (b *Builder) buildRefundData(outbound, inbound leg) (domain.RefundData, error) {
	f := b.fields

	documentNum, err := f.FakeIdentifier()
	if err != nil {
		return domain.RefundData{}, err
	}

	issuedAt, err := f.RandomDateTimeBetween(f.DaysAgo(365), f.Now())
	if err != nil {
		return domain.RefundData{}, err
	}

	passengerType, err := f.RandomChoice(domain.PassengerTypeCodes)
	if err != nil {
		return domain.RefundData{}, err
	}

	amounts, err := b.buildAmounts()
	if err != nil {
		return domain.RefundData{}, err
	}

	network, err := f.RandomChoice(domain.CardNetworkCodes)
	if err != nil {
		return domain.RefundData{}, err
	}

	taxes, err := b.buildTaxes()
	if err != nil {
		return domain.RefundData{}, err
	}

	coupons := make([]domain.Coupon, 0, 2)
	for i, l := range []leg{outbound, inbound} {
		coupon, err := b.buildCoupon(i+1, documentNum, l)
		if err != nil {
			return domain.RefundData{}, err
		}
		coupons = append(coupons, coupon)
	}

	return domain.RefundData{
		AccountableDocumentNum: documentNum,
		IssueLocalDate:         DateOnly(issuedAt),
		Customers: []domain.Customer{{
			CustomerName: domain.CustomerName{
				FirstName: f.FakeFirstName(),
				LastName:  f.FakeLastName(),
			},
			NameNum:           "01.02",
			PassengerTypeCode: passengerType,
		}},
		Amounts: amounts,
		PaymentMethod: []domain.PaymentMethod{{
			PaymentMethodTypeName: "CC",
			PaymentCard: domain.PaymentCard{
				PaymentCardNetworkCode: network,
				PaymentCardNum:         f.FakeCardNumber(network),
			},
		}},
		TravelRelatedServiceTaxCategories: []domain.TaxCategory{{
			TravelRelatedServiceTaxCategoryCode: "Refund",
			TravelRelatedServiceTaxes:           taxes,
		}},
		CouponList:           coupons,
		SaleTypeCode:         "D",
		TravelContextText:    domain.TravelContext,
		TravelContextDesc:    domain.TravelContext,
		DocumentCategoryCode: "T",
		RefundType:           "CC",
		Eligibility:          domain.RefundEligibility{Refundable: true, HasCompanion: true},
		RecordLocator:        f.FakeIban(),
		FareCalculation: domain.FareCalculation{
			FareCalculationLineText: f.FakeSentence(fareLineWords),
			FareCalculationTypeCode: "N",
		},
	}, nil
}

func (b *Builder) buildAmounts() ([]domain.Amount, error) {
	types := []domain.AmountType{domain.AmountTotal, domain.AmountRefund, domain.AmountRefundTax}
	amounts := make([]domain.Amount, 0, len(types))
	for _, t := range types {
		price, err := b.usdPrice(minAmount, maxAmount)
		if err != nil {
			return nil, fmt.Errorf("amount %s: %w", t, err)
		}
		amounts = append(amounts, domain.Amount{AmountTypeCode: t, Amount: price})
	}
	return amounts, nil
}

func (b *Builder) buildTaxes() ([]domain.Tax, error) {
	taxes := make([]domain.Tax, 0, len(domain.TaxChargeCodes))
	for _, code := range domain.TaxChargeCodes {
		price, err := b.usdPrice(minTaxAmount, maxTaxAmount)
		if err != nil {
			return nil, fmt.Errorf("tax %s: %w", code, err)
		}
		taxes = append(taxes, domain.Tax{ChargeTypeCode: code, DocumentTaxFeeAmt: price})
	}
	return taxes, nil
}

func (b *Builder) usdPrice(min, max float64) (domain.PriceHolder, error) {
	amt, err := b.fields.RandomCurrency(min, max, domain.DecimalPrecision)
	if err != nil {
		return domain.PriceHolder{}, err
	}
	return domain.PriceHolder{CurrencyEquivalentPrice: domain.Price{
		DecimalPrecisionCnt: domain.DecimalPrecision,
		CurrencyAmt:         amt,
		CurrencyCode:        domain.CurrencyUSD,
	}}, nil
}

// buildCoupon uses one flight number for all four flight number fields of the leg.
func (b *Builder) buildCoupon(num int, documentNum string, l leg) (domain.Coupon, error) {
	flightNum, err := b.fields.RandomInt(1, maxFlightNum)
	if err != nil {
		return domain.Coupon{}, err
	}
	return domain.Coupon{
		CouponNum:                   num,
		CouponStatusCode:            0,
		ResequencedCouponNum:        100 + num,
		TicketCouponSequenceNum:     num,
		AccountableDocumentNum:      documentNum,
		OriginAirportCode:           l.origin,
		DestinationAirportCode:      l.destination,
		FlightNum:                   flightNum,
		MarketingFlightNum:          flightNum,
		OperatedAsFlightNum:         flightNum,
		OperatedAsCarrierCode:       domain.CarrierCode,
		OperatedAsCarrierName:       domain.CarrierCode,
		OperatedByFlightNum:         flightNum,
		ScheduledDepartureLocalDate: DateOnly(l.departure),
	}, nil
}

func buildPnrSegments(outbound, inbound leg) []domain.FlightSegment {
	segments := make([]domain.FlightSegment, 0, 2)
	for i, l := range []leg{outbound, inbound} {
		segments = append(segments, domain.FlightSegment{
			AircraftTypeCode:          domain.CarrierCode,
			CancelEligible:            true,
			DestinationAirportCode:    l.destination,
			FlightSegmentNum:          i + 1,
			Flown:                     false,
			OriginAirportCode:         l.origin,
			ScheduledDepartureLocalTs: l.departure.Truncate(time.Minute),
		})
	}
	return segments
}

func (b *Builder) buildSender(cityCode string) (domain.Sender, error) {
	f := b.fields

	agentID, err := f.RandomInt(1, 50)
	if err != nil {
		return domain.Sender{}, err
	}
	vdnCode, err := f.RandomInt(1, 100)
	if err != nil {
		return domain.Sender{}, err
	}
	customerID, err := f.RandomInt(1, 10000)
	if err != nil {
		return domain.Sender{}, err
	}

	return domain.Sender{
		ReservationAgent: domain.ReservationAgent{
			AgentID:     agentID,
			AgentRoleID: domain.AgentRoleID,
			CityCode:    cityCode,
		},
		SenderCode:                      domain.SenderCode,
		TestLabName:                     domain.TestLabName,
		InactiveSessionTimeoutSecondCnt: 600,
		SessionTimeoutSecondCnt:         601,
		PointOfSale: domain.PointOfSale{
			CountryCode:         domain.PointOfSaleCountry,
			PointOfSaleCityCode: cityCode,
			SoldByTravelAgency:  true,
			PointOfSaleID:       cityCode + "RES",
			VdnCode:             vdnCode,
			CustomerID:          customerID,
		},
	}, nil
}
