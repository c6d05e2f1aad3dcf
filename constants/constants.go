package constants

// Cat availability
const CAT_AVAILABLE = "Available"

// Error responses
const CAT_NOT_FOUND = "Cat not found"
const BREED_NOT_FOUND = "Breed not found"
const CUSTOMER_NOT_FOUND = "Customer not found"
const EMPLOYEE_NOT_FOUND = "Employee not found"
const ORDER_NOT_FOUND = "Order not found"
const DETAIL_NOT_FOUND = "Detail not found"

// Unresolved references in a request body
const REF_CUSTOMER_NOT_FOUND = "customer not found"
const REF_CAT_NOT_FOUND = "cat not found"
const REF_BREED_NOT_FOUND = "breed not found"
const REF_ORDER_NOT_FOUND = "order not found"

const INVALID_ID = "invalid id parameter"
const DATE_REQUIRED = "date query parameter is required"
const DATE_INVALID = "date must be formatted as YYYY-MM-DD"

// Success responses
const ORDER_DELETED = "Order deleted"
