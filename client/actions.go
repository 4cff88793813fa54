package client

// Action is anything the reducer understands. The set is closed.
type Action interface {
	action()
}

type (
	AddItem        struct{ Item OrderItem }
	RemoveItem     struct{ Name string }
	ClearOrder     struct{}
	// ClearSubmitted drops the lines that were sent to the server unchanged;
	// lines added or edited since then stay in the order.
	ClearSubmitted struct{ Items []OrderItem }
	SetOrderType   struct{ Value string }
	SetPaymentType struct{ Value string }

	CategoryListRequest struct{}
	CategoryListSuccess struct{ Categories []Category }
	CategoryListFail    struct{ Err error }

	ProductListRequest struct{}
	ProductListSuccess struct{ Products []Product }
	ProductListFail    struct{ Err error }

	OrderCreateRequest struct{}
	OrderCreateSuccess struct{ Order CreatedOrder }
	OrderCreateFail    struct{ Err error }
)

func (AddItem) action()        {}
func (RemoveItem) action()     {}
func (ClearOrder) action()     {}
func (ClearSubmitted) action() {}
func (SetOrderType) action()   {}
func (SetPaymentType) action() {}

func (CategoryListRequest) action() {}
func (CategoryListSuccess) action() {}
func (CategoryListFail) action()    {}

func (ProductListRequest) action() {}
func (ProductListSuccess) action() {}
func (ProductListFail) action()    {}

func (OrderCreateRequest) action() {}
func (OrderCreateSuccess) action() {}
func (OrderCreateFail) action()    {}
