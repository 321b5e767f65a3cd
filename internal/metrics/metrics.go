package metrics

const Namespace = "brief"
