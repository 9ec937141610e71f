package constants

// Vai trò người dùng
const (
	ROLE_CUSTOMER = "CUSTOMER"
	ROLE_STAFF    = "STAFF"
	ROLE_ADMIN    = "ADMIN"
	ROLE_GUEST    = "GUEST"
)

var ROLES = []string{ROLE_CUSTOMER, ROLE_STAFF, ROLE_ADMIN, ROLE_GUEST}

// Trạng thái đơn hàng
const (
	ORDER_PENDING   = "PENDING"
	ORDER_CONFIRMED = "CONFIRMED"
	ORDER_COMPLETED = "COMPLETED"
	ORDER_CANCELLED = "CANCELLED"
)

var ORDER_STATUSES = []string{ORDER_PENDING, ORDER_CONFIRMED, ORDER_COMPLETED, ORDER_CANCELLED}

// Phương thức thanh toán
const (
	PAYMENT_COD           = "COD"
	PAYMENT_BANK_TRANSFER = "BANK_TRANSFER"
)

var PAYMENT_METHODS = []string{PAYMENT_COD, PAYMENT_BANK_TRANSFER}

// Trạng thái sản phẩm
const (
	PRODUCT_ACTIVE   = "ACTIVE"
	PRODUCT_INACTIVE = "INACTIVE"
	PRODUCT_ARCHIVED = "ARCHIVED"
)

var PRODUCT_STATUSES = []string{PRODUCT_ACTIVE, PRODUCT_INACTIVE, PRODUCT_ARCHIVED}

// Trạng thái phiên bản sản phẩm (đồng bộ theo tồn kho)
const (
	VARIANT_IN_STOCK     = "IN_STOCK"
	VARIANT_OUT_OF_STOCK = "OUT_OF_STOCK"
	VARIANT_DISCONTINUED = "DISCONTINUED"
)

// Loại giao dịch kho
const (
	INVENTORY_RESTOCK    = "RESTOCK"
	INVENTORY_SALE       = "SALE"
	INVENTORY_RETURN     = "RETURN"
	INVENTORY_ADJUSTMENT = "ADJUSTMENT"
)

var INVENTORY_TYPES = []string{INVENTORY_RESTOCK, INVENTORY_SALE, INVENTORY_RETURN, INVENTORY_ADJUSTMENT}

// Phí vận chuyển cố định (hiện đang miễn phí)
const SHIPPING_FEE = 0

// Thông báo dùng chung
const (
	ERROR_INPUT              = "Dữ liệu đầu vào không hợp lệ"
	ERROR_CREATE             = "Không thể tạo dữ liệu"
	ERROR_EDIT               = "Không thể cập nhật dữ liệu"
	ERROR_DELETE             = "Không thể xoá dữ liệu"
	ERROR_INTERNAL_ERROR     = "Lỗi hệ thống"
	NOT_ADMIN                = "Bạn không có quyền thực hiện thao tác này"
	DATA_INPUT_IS_NOT_NUMBER = "Tham số phải là số"
)
