package pos

type Role string

// RoleEmployee is assigned when an employee is created without a role.
const RoleEmployee Role = "employee"
